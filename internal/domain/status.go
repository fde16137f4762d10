package domain

// Legal status transitions:
//
//	pending   -> confirmed, cancelled
//	confirmed -> completed, cancelled
//	cancelled -> (terminal)
//	completed -> (terminal)
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransition reports whether an appointment may move from one status to
// another per the transition table above.
func CanTransition(from, to AppointmentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves the given status.
func IsTerminal(status AppointmentStatus) bool {
	return len(transitions[status]) == 0
}

// IsCreationStatus reports whether a status is valid as the initial status
// of a freshly booked appointment.
func IsCreationStatus(status AppointmentStatus) bool {
	return status == StatusPending || status == StatusConfirmed
}
