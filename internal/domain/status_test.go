package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("pending can be confirmed or cancelled", func(t *testing.T) {
		assert.True(t, CanTransition(StatusPending, StatusConfirmed))
		assert.True(t, CanTransition(StatusPending, StatusCancelled))
		assert.False(t, CanTransition(StatusPending, StatusCompleted))
	})

	t.Run("confirmed can be completed or cancelled", func(t *testing.T) {
		assert.True(t, CanTransition(StatusConfirmed, StatusCompleted))
		assert.True(t, CanTransition(StatusConfirmed, StatusCancelled))
		assert.False(t, CanTransition(StatusConfirmed, StatusPending))
	})

	t.Run("terminal statuses allow nothing", func(t *testing.T) {
		for _, from := range []AppointmentStatus{StatusCancelled, StatusCompleted} {
			for _, to := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
				assert.False(t, CanTransition(from, to), "%s -> %s must be rejected", from, to)
			}
		}
	})

	t.Run("self transition is rejected", func(t *testing.T) {
		assert.False(t, CanTransition(StatusPending, StatusPending))
		assert.False(t, CanTransition(StatusConfirmed, StatusConfirmed))
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusCompleted))
}

func TestIsCreationStatus(t *testing.T) {
	assert.True(t, IsCreationStatus(StatusPending))
	assert.True(t, IsCreationStatus(StatusConfirmed))
	assert.False(t, IsCreationStatus(StatusCancelled))
	assert.False(t, IsCreationStatus(StatusCompleted))
}

func TestParseAppointmentStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		status, ok := ParseAppointmentStatus(s)
		assert.True(t, ok)
		assert.Equal(t, AppointmentStatus(s), status)
	}

	_, ok := ParseAppointmentStatus("rescheduled")
	assert.False(t, ok)
}
