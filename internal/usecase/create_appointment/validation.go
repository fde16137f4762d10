package create_appointment

import "fmt"

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salon_id must be positive", ErrInvalidInput)
	}
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer_id must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id must be positive", ErrInvalidInput)
	}
	if req.StylistID != nil && *req.StylistID <= 0 {
		return fmt.Errorf("%w: stylist_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.StartTime.Valid() {
		return fmt.Errorf("%w: start_time is out of range", ErrInvalidInput)
	}
	return nil
}
