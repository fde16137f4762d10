package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storageSalon "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	storageSchedule "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Фейки репозиториев. Потокобезопасный репозиторий в памяти плюс
// сериализующий менеджер транзакций воспроизводят семантику
// "проверка и вставка в одной сериализуемой транзакции".

type memAppointmentRepo struct {
	mu     sync.Mutex
	nextID int64
	items  []*domain.Appointment
}

func (m *memAppointmentRepo) Create(_ context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	created := *ap
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memAppointmentRepo) FindActiveByScope(_ context.Context, scope domain.AppointmentScope) ([]*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Appointment, 0, len(m.items))
	for _, ap := range m.items {
		if ap.SalonID != scope.SalonID || !ap.Date.Equal(scope.Date) || !ap.IsActive() {
			continue
		}
		if scope.StylistID != nil && !ap.SharesStylistScope(scope.StylistID) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

// serialTxManager выполняет функции строго по одной, как это делает
// сериализуемая транзакция поверх одного scope.
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeScheduleRepo struct {
	hours    map[int]*domain.BusinessHours
	holidays map[string]*domain.Holiday
}

func (f *fakeScheduleRepo) GetBusinessHoursForDay(_ context.Context, _ int64, dayOfWeek int) (*domain.BusinessHours, error) {
	bh, ok := f.hours[dayOfWeek]
	if !ok {
		return nil, storageSchedule.ErrBusinessHoursNotFound
	}
	return bh, nil
}

func (f *fakeScheduleRepo) FindHoliday(_ context.Context, _ int64, date time.Time) (*domain.Holiday, error) {
	h, ok := f.holidays[date.Format(domain.DateFormat)]
	if !ok {
		return nil, storageSchedule.ErrHolidayNotFound
	}
	return h, nil
}

type fakeSalonRepo struct {
	service *domain.Service
}

func (f *fakeSalonRepo) GetService(_ context.Context, salonID, serviceID int64) (*domain.Service, error) {
	if f.service == nil || f.service.ID != serviceID || f.service.SalonID != salonID {
		return nil, storageSalon.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func tod(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	v, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	uc       *UseCase
	repo     *memAppointmentRepo
	schedule *fakeScheduleRepo
}

func newTestEnv(initialStatus domain.AppointmentStatus) *testEnv {
	repo := &memAppointmentRepo{}
	schedule := &fakeScheduleRepo{
		hours: map[int]*domain.BusinessHours{
			int(testDate.Weekday()): {
				SalonID:   1,
				DayOfWeek: int(testDate.Weekday()),
				OpenTime:  types.TimeOfDay(9 * 60),
				CloseTime: types.TimeOfDay(19 * 60),
			},
		},
		holidays: map[string]*domain.Holiday{},
	}
	salonRepo := &fakeSalonRepo{
		service: &domain.Service{
			ID:              10,
			SalonID:         1,
			Name:            "Стрижка",
			Price:           1500,
			DurationMinutes: 30,
		},
	}

	uc := NewUseCase(
		repo,
		schedule,
		salonRepo,
		&serialTxManager{},
		nil,
		&fakeTimeProvider{now: testDate},
		initialStatus,
		5*time.Second,
		noopLogger{},
	)

	return &testEnv{uc: uc, repo: repo, schedule: schedule}
}

func validRequest(t *testing.T) Request {
	return Request{
		SalonID:    1,
		CustomerID: 42,
		ServiceID:  10,
		Date:       testDate,
		StartTime:  tod(t, "10:00"),
	}
}

func TestUseCase_Execute_CreatesAppointment(t *testing.T) {
	env := newTestEnv(domain.StatusConfirmed)

	created, err := env.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, domain.StatusConfirmed, created.Status)
	assert.Equal(t, "10:00", created.StartTime.String())
	assert.Equal(t, "10:30", created.EndTime.String())
	assert.Equal(t, "Стрижка", created.ServiceName)
	assert.Equal(t, float64(1500), created.ServicePrice)
}

func TestUseCase_Execute_InitialStatusFromConfig(t *testing.T) {
	env := newTestEnv(domain.StatusPending)

	created, err := env.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	env := newTestEnv(domain.StatusConfirmed)

	_, err := env.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// Точно тот же интервал
	_, err = env.uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Частичное пересечение
	req := validRequest(t)
	req.StartTime = tod(t, "10:15")
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUseCase_Execute_TouchingIntervalsDoNotConflict(t *testing.T) {
	env := newTestEnv(domain.StatusConfirmed)

	_, err := env.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// Запись впритык к существующей: [10:30, 11:00) после [10:00, 10:30)
	req := validRequest(t)
	req.StartTime = tod(t, "10:30")
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_CancelFreesSlot(t *testing.T) {
	env := newTestEnv(domain.StatusConfirmed)

	created, err := env.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// Отменяем напрямую в репозитории
	env.repo.mu.Lock()
	for _, ap := range env.repo.items {
		if ap.ID == created.ID {
			ap.Status = domain.StatusCancelled
		}
	}
	env.repo.mu.Unlock()

	_, err = env.uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
}

func TestUseCase_Execute_StylistScopes(t *testing.T) {
	stylist1 := int64(1)
	stylist2 := int64(2)

	t.Run("different stylists can book the same interval", func(t *testing.T) {
		env := newTestEnv(domain.StatusConfirmed)

		req := validRequest(t)
		req.StylistID = &stylist1
		_, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		req2 := validRequest(t)
		req2.CustomerID = 43
		req2.StylistID = &stylist2
		_, err = env.uc.Execute(context.Background(), req2)
		assert.NoError(t, err)
	})

	t.Run("salon-wide appointment blocks every stylist", func(t *testing.T) {
		env := newTestEnv(domain.StatusConfirmed)

		_, err := env.uc.Execute(context.Background(), validRequest(t))
		require.NoError(t, err)

		req := validRequest(t)
		req.StylistID = &stylist1
		_, err = env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("stylist appointment blocks salon-wide booking", func(t *testing.T) {
		env := newTestEnv(domain.StatusConfirmed)

		req := validRequest(t)
		req.StylistID = &stylist1
		_, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		_, err = env.uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

func TestUseCase_Execute_SalonClosed(t *testing.T) {
	t.Run("holiday", func(t *testing.T) {
		env := newTestEnv(domain.StatusConfirmed)
		env.schedule.holidays[testDate.Format(domain.DateFormat)] = &domain.Holiday{SalonID: 1, Date: testDate}

		_, err := env.uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrSalonClosed)
	})

	t.Run("closed weekday", func(t *testing.T) {
		env := newTestEnv(domain.StatusConfirmed)
		env.schedule.hours[int(testDate.Weekday())].IsClosed = true

		_, err := env.uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrSalonClosed)
	})

	t.Run("no business hours row", func(t *testing.T) {
		env := newTestEnv(domain.StatusConfirmed)
		delete(env.schedule.hours, int(testDate.Weekday()))

		_, err := env.uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrSalonClosed)
	})
}

func TestUseCase_Execute_OutsideBusinessHours(t *testing.T) {
	t.Run("before opening", func(t *testing.T) {
		env := newTestEnv(domain.StatusConfirmed)

		req := validRequest(t)
		req.StartTime = tod(t, "08:45")
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	})

	t.Run("runs past closing", func(t *testing.T) {
		env := newTestEnv(domain.StatusConfirmed)

		req := validRequest(t)
		req.StartTime = tod(t, "18:45")
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	})

	t.Run("ends exactly at closing is allowed", func(t *testing.T) {
		env := newTestEnv(domain.StatusConfirmed)

		req := validRequest(t)
		req.StartTime = tod(t, "18:30")
		_, err := env.uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	env := newTestEnv(domain.StatusConfirmed)

	req := validRequest(t)
	req.ServiceID = 99
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	env := newTestEnv(domain.StatusConfirmed)

	req := validRequest(t)
	req.CustomerID = 0
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_ConcurrentSingleWinner(t *testing.T) {
	// N конкурирующих клиентов бронируют один и тот же слот:
	// ровно один выигрывает, остальные получают ErrSlotTaken.
	const workers = 16

	env := newTestEnv(domain.StatusConfirmed)

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest(t)
			req.CustomerID = int64(100 + i)
			_, errs[i] = env.uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, winners)

	// В хранилище ровно одна активная запись
	active, err := env.repo.FindActiveByScope(context.Background(), domain.AppointmentScope{SalonID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
