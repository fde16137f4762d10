package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func tod(s string) types.TimeOfDay {
	t, err := types.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	t.Run("partial overlap", func(t *testing.T) {
		assert.True(t, Overlaps(tod("10:00"), tod("10:30"), tod("10:15"), tod("10:45")))
		assert.True(t, Overlaps(tod("10:15"), tod("10:45"), tod("10:00"), tod("10:30")))
	})

	t.Run("containment", func(t *testing.T) {
		assert.True(t, Overlaps(tod("10:00"), tod("12:00"), tod("10:30"), tod("11:00")))
		assert.True(t, Overlaps(tod("10:30"), tod("11:00"), tod("10:00"), tod("12:00")))
	})

	t.Run("identical intervals", func(t *testing.T) {
		assert.True(t, Overlaps(tod("10:00"), tod("10:30"), tod("10:00"), tod("10:30")))
	})

	t.Run("touching endpoints do not conflict", func(t *testing.T) {
		assert.False(t, Overlaps(tod("10:00"), tod("10:30"), tod("10:30"), tod("11:00")))
		assert.False(t, Overlaps(tod("10:30"), tod("11:00"), tod("10:00"), tod("10:30")))
	})

	t.Run("disjoint intervals", func(t *testing.T) {
		assert.False(t, Overlaps(tod("09:00"), tod("09:30"), tod("11:00"), tod("11:30")))
	})
}

func TestAppointment_OverlapsInterval(t *testing.T) {
	ap := &Appointment{
		StartTime: tod("10:00"),
		EndTime:   tod("10:30"),
		Status:    StatusConfirmed,
	}

	t.Run("active appointment overlaps", func(t *testing.T) {
		assert.True(t, ap.OverlapsInterval(tod("10:15"), tod("10:45")))
	})

	t.Run("completed appointment still occupies its slot", func(t *testing.T) {
		completed := &Appointment{StartTime: tod("10:00"), EndTime: tod("10:30"), Status: StatusCompleted}
		assert.True(t, completed.OverlapsInterval(tod("10:00"), tod("10:30")))
	})

	t.Run("cancelled appointment never overlaps", func(t *testing.T) {
		cancelled := &Appointment{StartTime: tod("10:00"), EndTime: tod("10:30"), Status: StatusCancelled}
		assert.False(t, cancelled.OverlapsInterval(tod("10:00"), tod("10:30")))
	})
}

func TestAppointment_SharesStylistScope(t *testing.T) {
	stylist1 := int64(1)
	stylist2 := int64(2)

	t.Run("nil stylist occupies the whole salon", func(t *testing.T) {
		ap := &Appointment{StylistID: nil}
		assert.True(t, ap.SharesStylistScope(nil))
		assert.True(t, ap.SharesStylistScope(&stylist1))
	})

	t.Run("request without stylist contends with everyone", func(t *testing.T) {
		ap := &Appointment{StylistID: &stylist1}
		assert.True(t, ap.SharesStylistScope(nil))
	})

	t.Run("same stylist contends", func(t *testing.T) {
		ap := &Appointment{StylistID: &stylist1}
		assert.True(t, ap.SharesStylistScope(&stylist1))
	})

	t.Run("different stylists do not contend", func(t *testing.T) {
		ap := &Appointment{StylistID: &stylist1}
		assert.False(t, ap.SharesStylistScope(&stylist2))
	})
}
