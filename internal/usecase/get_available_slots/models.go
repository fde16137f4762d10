package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonID   int64     // ID салона
	ServiceID int64     // ID услуги (задаёт длительность слота)
	Date      time.Time // Дата, на которую запрашиваются слоты
}

// Response модель ответа со списком доступных стартов
type Response struct {
	Date            time.Time         // Дата запроса
	SalonID         int64             // ID салона
	ServiceID       int64             // ID услуги
	DurationMinutes int               // Длительность услуги
	Slots           []types.TimeOfDay // Доступные времена начала по возрастанию
}
