package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storageSalon "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	storageSchedule "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// Фейки репозиториев

type fakeScheduleRepo struct {
	nextID   int64
	hours    map[int64]map[int]*domain.BusinessHours // salonID -> dayOfWeek
	holidays map[int64]*domain.Holiday               // по ID
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		hours:    map[int64]map[int]*domain.BusinessHours{},
		holidays: map[int64]*domain.Holiday{},
	}
}

func (f *fakeScheduleRepo) GetBusinessHours(_ context.Context, salonID int64) ([]*domain.BusinessHours, error) {
	out := make([]*domain.BusinessHours, 0)
	for _, bh := range f.hours[salonID] {
		out = append(out, bh)
	}
	return out, nil
}

func (f *fakeScheduleRepo) UpsertBusinessHours(_ context.Context, bh *domain.BusinessHours) (*domain.BusinessHours, error) {
	if f.hours[bh.SalonID] == nil {
		f.hours[bh.SalonID] = map[int]*domain.BusinessHours{}
	}
	stored := *bh
	if existing, ok := f.hours[bh.SalonID][bh.DayOfWeek]; ok {
		stored.ID = existing.ID
	} else {
		f.nextID++
		stored.ID = f.nextID
	}
	f.hours[bh.SalonID][bh.DayOfWeek] = &stored
	return &stored, nil
}

func (f *fakeScheduleRepo) GetHolidayByID(_ context.Context, id int64) (*domain.Holiday, error) {
	h, ok := f.holidays[id]
	if !ok {
		return nil, storageSchedule.ErrHolidayNotFound
	}
	return h, nil
}

func (f *fakeScheduleRepo) ListHolidays(_ context.Context, salonID int64) ([]*domain.Holiday, error) {
	out := make([]*domain.Holiday, 0)
	for _, h := range f.holidays {
		if h.SalonID == salonID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) CreateHoliday(_ context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	for _, existing := range f.holidays {
		if existing.SalonID == h.SalonID && existing.Date.Equal(h.Date) {
			return nil, storageSchedule.ErrHolidayExists
		}
	}
	f.nextID++
	stored := *h
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.holidays[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeScheduleRepo) DeleteHoliday(_ context.Context, id int64) error {
	if _, ok := f.holidays[id]; !ok {
		return storageSchedule.ErrHolidayNotFound
	}
	delete(f.holidays, id)
	return nil
}

type fakeSalonRepo struct {
	salons map[int64]*domain.Salon
}

func (f *fakeSalonRepo) GetSalonByID(_ context.Context, id int64) (*domain.Salon, error) {
	salon, ok := f.salons[id]
	if !ok {
		return nil, storageSalon.ErrSalonNotFound
	}
	return salon, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const (
	ownerID    = int64(100)
	strangerID = int64(999)
)

func newTestService() (*Service, *fakeScheduleRepo) {
	repo := newFakeScheduleRepo()
	salons := &fakeSalonRepo{
		salons: map[int64]*domain.Salon{
			1: {ID: 1, Name: "Тестовый салон", OwnerID: ownerID},
		},
	}
	return NewService(repo, salons, noopLogger{}), repo
}

func TestService_SetBusinessHours(t *testing.T) {
	t.Run("all rows applied", func(t *testing.T) {
		svc, repo := newTestService()

		resp, err := svc.SetBusinessHours(context.Background(), &models.SetBusinessHoursRequest{
			SalonID: 1,
			UserID:  ownerID,
			Hours: []models.BusinessHoursEntry{
				{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"},
				{DayOfWeek: 2, OpenTime: "09:00", CloseTime: "18:00"},
				{DayOfWeek: 0, IsClosed: true},
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Results, 3)
		for _, r := range resp.Results {
			assert.True(t, r.OK, "day %d", r.DayOfWeek)
			assert.Nil(t, r.Error)
		}
		assert.Len(t, repo.hours[1], 3)
	})

	t.Run("bad row does not block the rest", func(t *testing.T) {
		svc, repo := newTestService()

		resp, err := svc.SetBusinessHours(context.Background(), &models.SetBusinessHoursRequest{
			SalonID: 1,
			UserID:  ownerID,
			Hours: []models.BusinessHoursEntry{
				{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"},
				{DayOfWeek: 2, OpenTime: "18:00", CloseTime: "09:00"}, // открытие позже закрытия
				{DayOfWeek: 9, OpenTime: "09:00", CloseTime: "18:00"}, // несуществующий день
				{DayOfWeek: 3, OpenTime: "пц:оо", CloseTime: "18:00"}, // мусор вместо времени
				{DayOfWeek: 4, OpenTime: "10:00", CloseTime: "16:00"},
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Results, 5)

		assert.True(t, resp.Results[0].OK)
		assert.False(t, resp.Results[1].OK)
		require.NotNil(t, resp.Results[1].Error)
		assert.False(t, resp.Results[2].OK)
		assert.False(t, resp.Results[3].OK)
		assert.True(t, resp.Results[4].OK)

		// Применились только валидные строки
		assert.Len(t, repo.hours[1], 2)
	})

	t.Run("upsert overwrites existing row", func(t *testing.T) {
		svc, repo := newTestService()

		_, err := svc.SetBusinessHours(context.Background(), &models.SetBusinessHoursRequest{
			SalonID: 1,
			UserID:  ownerID,
			Hours:   []models.BusinessHoursEntry{{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"}},
		})
		require.NoError(t, err)

		_, err = svc.SetBusinessHours(context.Background(), &models.SetBusinessHoursRequest{
			SalonID: 1,
			UserID:  ownerID,
			Hours:   []models.BusinessHoursEntry{{DayOfWeek: 1, OpenTime: "10:00", CloseTime: "20:00"}},
		})
		require.NoError(t, err)

		require.Len(t, repo.hours[1], 1)
		assert.Equal(t, "10:00", repo.hours[1][1].OpenTime.String())
	})

	t.Run("empty hours rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.SetBusinessHours(context.Background(), &models.SetBusinessHoursRequest{
			SalonID: 1,
			UserID:  ownerID,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.SetBusinessHours(context.Background(), &models.SetBusinessHoursRequest{
			SalonID: 1,
			UserID:  strangerID,
			Hours:   []models.BusinessHoursEntry{{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"}},
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_GetBusinessHours(t *testing.T) {
	t.Run("returns stored rows", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.SetBusinessHours(context.Background(), &models.SetBusinessHoursRequest{
			SalonID: 1,
			UserID:  ownerID,
			Hours: []models.BusinessHoursEntry{
				{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"},
				{DayOfWeek: 0, IsClosed: true},
			},
		})
		require.NoError(t, err)

		resp, err := svc.GetBusinessHours(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, resp.Hours, 2)
	})

	t.Run("missing salon", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.GetBusinessHours(context.Background(), 5)
		assert.ErrorIs(t, err, ErrSalonNotFound)
	})
}

func TestService_AddHoliday(t *testing.T) {
	t.Run("owner adds a holiday", func(t *testing.T) {
		svc, _ := newTestService()

		desc := "Инвентаризация"
		resp, err := svc.AddHoliday(context.Background(), &models.AddHolidayRequest{
			SalonID:     1,
			UserID:      ownerID,
			Date:        "2025-12-31",
			Description: &desc,
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-12-31", resp.Date)
		require.NotNil(t, resp.Description)
		assert.Equal(t, desc, *resp.Description)
	})

	t.Run("duplicate date", func(t *testing.T) {
		svc, _ := newTestService()

		req := &models.AddHolidayRequest{SalonID: 1, UserID: ownerID, Date: "2025-12-31"}
		_, err := svc.AddHoliday(context.Background(), req)
		require.NoError(t, err)

		_, err = svc.AddHoliday(context.Background(), req)
		assert.ErrorIs(t, err, ErrHolidayExists)
	})

	t.Run("bad date format", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.AddHoliday(context.Background(), &models.AddHolidayRequest{
			SalonID: 1,
			UserID:  ownerID,
			Date:    "31.12.2025",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.AddHoliday(context.Background(), &models.AddHolidayRequest{
			SalonID: 1,
			UserID:  strangerID,
			Date:    "2025-12-31",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_ListHolidays(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddHoliday(context.Background(), &models.AddHolidayRequest{SalonID: 1, UserID: ownerID, Date: "2025-12-31"})
	require.NoError(t, err)

	resp, err := svc.ListHolidays(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, resp.Holidays, 1)

	_, err = svc.ListHolidays(context.Background(), 5)
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestService_RemoveHoliday(t *testing.T) {
	t.Run("owner removes a holiday", func(t *testing.T) {
		svc, repo := newTestService()

		created, err := svc.AddHoliday(context.Background(), &models.AddHolidayRequest{SalonID: 1, UserID: ownerID, Date: "2025-12-31"})
		require.NoError(t, err)

		err = svc.RemoveHoliday(context.Background(), 1, created.ID, ownerID)
		require.NoError(t, err)
		assert.Empty(t, repo.holidays)
	})

	t.Run("holiday of another salon is denied", func(t *testing.T) {
		svc, repo := newTestService()

		// Выходной чужого салона в том же хранилище
		repo.nextID++
		repo.holidays[repo.nextID] = &domain.Holiday{
			ID:      repo.nextID,
			SalonID: 2,
			Date:    time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		}

		err := svc.RemoveHoliday(context.Background(), 1, repo.nextID, ownerID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing holiday", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.RemoveHoliday(context.Background(), 1, 77, ownerID)
		assert.ErrorIs(t, err, ErrHolidayNotFound)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.RemoveHoliday(context.Background(), 1, 1, strangerID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
