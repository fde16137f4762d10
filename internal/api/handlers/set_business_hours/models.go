package set_business_hours

import "github.com/m04kA/SMC-SalonService/internal/service/schedule/models"

// SetBusinessHoursRequest HTTP request model
type SetBusinessHoursRequest struct {
	Hours []models.BusinessHoursEntry `json:"hours"`
}
