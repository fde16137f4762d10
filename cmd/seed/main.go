// Наполняет базу тестовыми данными: салоны, услуги, рабочие часы,
// выходные и записи. Используется для локальной разработки и демо.
package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	salonsCount          = 5
	servicesPerSalon     = 4
	appointmentsPerSalon = 10
)

var serviceNames = []string{
	"Мужская стрижка",
	"Женская стрижка",
	"Окрашивание",
	"Укладка",
	"Маникюр",
	"Педикюр",
	"Стрижка бороды",
	"Уход за волосами",
}

var durations = []int{30, 45, 60, 90}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Printf("Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	if err := seed(db); err != nil {
		fmt.Printf("Seed failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Seed completed")
}

func seed(db *sql.DB) error {
	for i := 0; i < salonsCount; i++ {
		salonID, err := seedSalon(db, int64(i+1))
		if err != nil {
			return fmt.Errorf("seed salon: %w", err)
		}

		serviceIDs, serviceDurations, err := seedServices(db, salonID)
		if err != nil {
			return fmt.Errorf("seed services for salon %d: %w", salonID, err)
		}

		if err := seedBusinessHours(db, salonID); err != nil {
			return fmt.Errorf("seed business hours for salon %d: %w", salonID, err)
		}

		if err := seedHolidays(db, salonID); err != nil {
			return fmt.Errorf("seed holidays for salon %d: %w", salonID, err)
		}

		if err := seedAppointments(db, salonID, serviceIDs, serviceDurations); err != nil {
			return fmt.Errorf("seed appointments for salon %d: %w", salonID, err)
		}

		fmt.Printf("Seeded salon id=%d with %d services\n", salonID, len(serviceIDs))
	}

	return nil
}

func seedSalon(db *sql.DB, ownerID int64) (int64, error) {
	name := gofakeit.Company() + " Salon"
	slug := fmt.Sprintf("%s-%d", gofakeit.Word(), gofakeit.Number(1000, 9999))
	address := gofakeit.Address().Address
	phone := gofakeit.Phone()

	var id int64
	err := db.QueryRow(`
		INSERT INTO salons (name, slug, address, phone, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		name, slug, address, phone, ownerID,
	).Scan(&id)

	return id, err
}

func seedServices(db *sql.DB, salonID int64) ([]int64, map[int64]int, error) {
	ids := make([]int64, 0, servicesPerSalon)
	byDuration := make(map[int64]int, servicesPerSalon)

	for i := 0; i < servicesPerSalon; i++ {
		name := serviceNames[rand.Intn(len(serviceNames))]
		price := float64(gofakeit.Number(500, 5000))
		duration := durations[rand.Intn(len(durations))]

		var id int64
		err := db.QueryRow(`
			INSERT INTO services (salon_id, name, description, price, duration_minutes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			salonID, name, gofakeit.Sentence(8), price, duration,
		).Scan(&id)
		if err != nil {
			return nil, nil, err
		}

		ids = append(ids, id)
		byDuration[id] = duration
	}

	return ids, byDuration, nil
}

func seedBusinessHours(db *sql.DB, salonID int64) error {
	// Понедельник-суббота открыто, воскресенье закрыто
	for day := 0; day <= 6; day++ {
		isClosed := day == 0

		var open, closeT interface{}
		if !isClosed {
			open = "09:00:00"
			closeT = "19:00:00"
		}

		_, err := db.Exec(`
			INSERT INTO business_hours (salon_id, day_of_week, open_time, close_time, is_closed)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (salon_id, day_of_week) DO NOTHING`,
			salonID, day, open, closeT, isClosed,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func seedHolidays(db *sql.DB, salonID int64) error {
	// Один случайный выходной в ближайшие 30 дней
	date := time.Now().AddDate(0, 0, gofakeit.Number(7, 30))

	_, err := db.Exec(`
		INSERT INTO holidays (salon_id, holiday_date, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (salon_id, holiday_date) DO NOTHING`,
		salonID, date.Format(domain.DateFormat), "Санитарный день",
	)

	return err
}

func seedAppointments(db *sql.DB, salonID int64, serviceIDs []int64, serviceDurations map[int64]int) error {
	for i := 0; i < appointmentsPerSalon; i++ {
		serviceID := serviceIDs[rand.Intn(len(serviceIDs))]
		duration := serviceDurations[serviceID]

		date := time.Now().AddDate(0, 0, gofakeit.Number(1, 14))
		start := types.FromClock(time.Date(0, 1, 1, gofakeit.Number(9, 17), 0, 0, 0, time.UTC))
		end := start.AddMinutes(duration)

		var serviceName string
		var servicePrice float64
		if err := db.QueryRow(`SELECT name, price FROM services WHERE id = $1`, serviceID).
			Scan(&serviceName, &servicePrice); err != nil {
			return err
		}

		// Конфликтующие интервалы пропускаем: seed не обязан быть плотным
		var conflicts int
		err := db.QueryRow(`
			SELECT COUNT(*) FROM appointments
			WHERE salon_id = $1 AND appointment_date = $2 AND status != 'cancelled'
			  AND start_time < $4 AND $3 < end_time`,
			salonID, date.Format(domain.DateFormat), start.String()+":00", end.String()+":00",
		).Scan(&conflicts)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			continue
		}

		_, err = db.Exec(`
			INSERT INTO appointments
				(salon_id, customer_id, service_id, appointment_date, start_time, end_time, status, service_name, service_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			salonID,
			gofakeit.Number(100, 999),
			serviceID,
			date.Format(domain.DateFormat),
			start.String()+":00",
			end.String()+":00",
			string(domain.StatusConfirmed),
			serviceName,
			servicePrice,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
