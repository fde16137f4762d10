package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	SalonID    int64           // ID салона
	CustomerID int64           // ID клиента (из заголовка аутентификации)
	StylistID  *int64          // ID мастера, nil означает запись на весь салон
	ServiceID  int64           // ID услуги, задаёт длительность и цену
	Date       time.Time       // Дата записи
	StartTime  types.TimeOfDay // Время начала
}
