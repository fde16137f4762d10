package delete_holiday

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgInvalidHolidayID = "некорректный ID выходного"
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgSalonNotFound    = "салон не найден"
	msgHolidayNotFound  = "выходной не найден"
	msgAccessDenied     = "доступ запрещён"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/salons/{salonId}/holidays/{holidayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /salons/{id}/holidays/{id} - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/holidays/{id} - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	holidayID, err := strconv.ParseInt(vars["holidayId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/holidays/{id} - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	if err := h.service.RemoveHoliday(r.Context(), salonID, holidayID, userID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrSalonNotFound):
			h.logger.Warn("DELETE /salons/{id}/holidays/{id} - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, schedule.ErrHolidayNotFound):
			h.logger.Warn("DELETE /salons/{id}/holidays/{id} - Holiday not found: holiday_id=%d", holidayID)
			handlers.RespondNotFound(w, msgHolidayNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /salons/{id}/holidays/{id} - Access denied: salon_id=%d, holiday_id=%d, user_id=%d", salonID, holidayID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /salons/{id}/holidays/{id} - Failed to remove holiday: holiday_id=%d, error=%v", holidayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /salons/{id}/holidays/{id} - Holiday removed successfully: holiday_id=%d, salon_id=%d", holidayID, salonID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
