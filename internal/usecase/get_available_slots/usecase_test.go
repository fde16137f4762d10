package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storageSalon "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	storageSchedule "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Фейки репозиториев

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) FindActiveByScope(_ context.Context, _ domain.AppointmentScope) ([]*domain.Appointment, error) {
	active := make([]*domain.Appointment, 0, len(f.appointments))
	for _, ap := range f.appointments {
		if ap.IsActive() {
			active = append(active, ap)
		}
	}
	return active, nil
}

type fakeScheduleRepo struct {
	hours    map[int]*domain.BusinessHours // по дню недели
	holidays map[string]*domain.Holiday    // по дате YYYY-MM-DD
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
	salon   *domain.Salon
	service *domain.Service
}

func (f *fakeSalonRepo) GetSalonByID(_ context.Context, id int64) (*domain.Salon, error) {
	if f.salon == nil || f.salon.ID != id {
		return nil, storageSalon.ErrSalonNotFound
	}
	return f.salon, nil
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

// Вспомогательные конструкторы

func tod(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	v, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func slotsAsStrings(slots []types.TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

// testDate 15 октября 2025, среда
var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func newTestUseCase(appointments []*domain.Appointment, hidePast bool, now time.Time) *UseCase {
	scheduleRepo := &fakeScheduleRepo{
		hours: map[int]*domain.BusinessHours{
			int(testDate.Weekday()): {
				SalonID:   1,
				DayOfWeek: int(testDate.Weekday()),
				OpenTime:  types.TimeOfDay(9 * 60),
				CloseTime: types.TimeOfDay(12 * 60),
			},
		},
		holidays: map[string]*domain.Holiday{},
	}
	salonRepo := &fakeSalonRepo{
		salon: &domain.Salon{ID: 1, OwnerID: 100},
		service: &domain.Service{
			ID:              10,
			SalonID:         1,
			Name:            "Стрижка",
			Price:           1500,
			DurationMinutes: 30,
		},
	}

	return NewUseCase(
		&fakeAppointmentRepo{appointments: appointments},
		scheduleRepo,
		salonRepo,
		&fakeTimeProvider{now: now},
		hidePast,
		noopLogger{},
	)
}

func TestUseCase_Execute_WorkedExample(t *testing.T) {
	// Часы 09:00-12:00, услуга 30 минут, подтверждённая запись 10:00-10:30.
	// Кандидаты с шагом 15 минут; 09:45, 10:00 и 10:15 выпадают из-за
	// пересечения, 11:30 входит (11:30+30 = 12:00).
	existing := []*domain.Appointment{
		{
			SalonID:   1,
			StartTime: tod(t, "10:00"),
			EndTime:   tod(t, "10:30"),
			Status:    domain.StatusConfirmed,
		},
	}

	uc := newTestUseCase(existing, false, testDate)

	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "09:15", "09:30",
		"10:30", "10:45", "11:00", "11:15", "11:30",
	}, slotsAsStrings(resp.Slots))
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestUseCase_Execute_EmptyDayIsFullGrid(t *testing.T) {
	uc := newTestUseCase(nil, false, testDate)

	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// 09:00 .. 11:30 с шагом 15 минут
	require.Len(t, resp.Slots, 11)
	assert.Equal(t, "09:00", resp.Slots[0].String())
	assert.Equal(t, "11:30", resp.Slots[len(resp.Slots)-1].String())
}

func TestUseCase_Execute_CancelledAppointmentFreesSlot(t *testing.T) {
	cancelled := []*domain.Appointment{
		{
			SalonID:   1,
			StartTime: tod(t, "10:00"),
			EndTime:   tod(t, "10:30"),
			Status:    domain.StatusCancelled,
		},
	}

	uc := newTestUseCase(cancelled, false, testDate)

	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// Отменённая запись не блокирует ни один слот
	assert.Contains(t, slotsAsStrings(resp.Slots), "09:45")
	assert.Contains(t, slotsAsStrings(resp.Slots), "10:00")
	assert.Contains(t, slotsAsStrings(resp.Slots), "10:15")
}

func TestUseCase_Execute_CompletedAppointmentKeepsSlot(t *testing.T) {
	completed := []*domain.Appointment{
		{
			SalonID:   1,
			StartTime: tod(t, "10:00"),
			EndTime:   tod(t, "10:30"),
			Status:    domain.StatusCompleted,
		},
	}

	uc := newTestUseCase(completed, false, testDate)

	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	assert.NotContains(t, slotsAsStrings(resp.Slots), "10:00")
	assert.NotContains(t, slotsAsStrings(resp.Slots), "10:15")
}

func TestUseCase_Execute_HolidayYieldsEmpty(t *testing.T) {
	uc := newTestUseCase(nil, false, testDate)
	uc.scheduleRepo.(*fakeScheduleRepo).holidays[testDate.Format(domain.DateFormat)] = &domain.Holiday{
		SalonID: 1,
		Date:    testDate,
	}

	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_ClosedDayYieldsEmpty(t *testing.T) {
	uc := newTestUseCase(nil, false, testDate)
	uc.scheduleRepo.(*fakeScheduleRepo).hours[int(testDate.Weekday())].IsClosed = true

	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_MissingBusinessHoursYieldsEmpty(t *testing.T) {
	uc := newTestUseCase(nil, false, testDate)
	delete(uc.scheduleRepo.(*fakeScheduleRepo).hours, int(testDate.Weekday()))

	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(nil, false, testDate)

	_, err := uc.Execute(context.Background(), Request{SalonID: 1, ServiceID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_ServiceOfOtherSalonNotFound(t *testing.T) {
	uc := newTestUseCase(nil, false, testDate)

	_, err := uc.Execute(context.Background(), Request{SalonID: 2, ServiceID: 10, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, false, testDate)

	_, err := uc.Execute(context.Background(), Request{SalonID: 0, ServiceID: 10, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_HidePastSlots(t *testing.T) {
	// Текущее время 10:20 того же дня: слоты раньше 10:20 скрываются
	now := time.Date(2025, 10, 15, 10, 20, 0, 0, time.UTC)
	uc := newTestUseCase(nil, true, now)

	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10:30", "10:45", "11:00", "11:15", "11:30",
	}, slotsAsStrings(resp.Slots))
}

func TestUseCase_Execute_PastSlotsKeptByDefault(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 20, 0, 0, time.UTC)
	uc := newTestUseCase(nil, false, now)

	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Contains(t, slotsAsStrings(resp.Slots), "09:00")
}
