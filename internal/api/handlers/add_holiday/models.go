package add_holiday

// AddHolidayRequest HTTP request model
type AddHolidayRequest struct {
	Date        string  `json:"date"` // "2025-10-15"
	Description *string `json:"description,omitempty"`
}
