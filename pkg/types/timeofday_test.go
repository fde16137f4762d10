package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("HH:MM", func(t *testing.T) {
		tod, err := ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, TimeOfDay(9*60+30), tod)
	})

	t.Run("HH:MM:SS drops seconds", func(t *testing.T) {
		tod, err := ParseTimeOfDay("18:45:59")
		require.NoError(t, err)
		assert.Equal(t, TimeOfDay(18*60+45), tod)
	})

	t.Run("midnight", func(t *testing.T) {
		tod, err := ParseTimeOfDay("00:00")
		require.NoError(t, err)
		assert.Equal(t, TimeOfDay(0), tod)
	})

	t.Run("last minute of day", func(t *testing.T) {
		tod, err := ParseTimeOfDay("23:59")
		require.NoError(t, err)
		assert.Equal(t, TimeOfDay(23*60+59), tod)
	})

	t.Run("hour out of range", func(t *testing.T) {
		_, err := ParseTimeOfDay("24:00")
		assert.Error(t, err)
	})

	t.Run("minute out of range", func(t *testing.T) {
		_, err := ParseTimeOfDay("12:60")
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseTimeOfDay("not a time")
		assert.Error(t, err)
	})
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay(9*60+5).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "23:59", TimeOfDay(23*60+59).String())
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	start := TimeOfDay(11 * 60)

	t.Run("within day", func(t *testing.T) {
		assert.Equal(t, TimeOfDay(11*60+30), start.AddMinutes(30))
	})

	t.Run("may exceed day boundary", func(t *testing.T) {
		end := TimeOfDay(23*60 + 30).AddMinutes(60)
		assert.False(t, end.Valid())
		assert.True(t, end.After(TimeOfDay(minutesPerDay-1)))
	})
}

func TestTimeOfDay_Compare(t *testing.T) {
	a := TimeOfDay(10 * 60)
	b := TimeOfDay(10*60 + 30)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}

func TestTimeOfDay_FromClock(t *testing.T) {
	clock := time.Date(2025, 10, 15, 14, 37, 59, 0, time.UTC)
	assert.Equal(t, TimeOfDay(14*60+37), FromClock(clock))
}

func TestTimeOfDay_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := TimeOfDay(9 * 60).MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `"09:00"`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.UnmarshalJSON([]byte(`"17:15"`)))
		assert.Equal(t, TimeOfDay(17*60+15), tod)
	})

	t.Run("unmarshal invalid", func(t *testing.T) {
		var tod TimeOfDay
		assert.Error(t, tod.UnmarshalJSON([]byte(`"25:00"`)))
	})
}

func TestTimeOfDay_SQL(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		v, err := TimeOfDay(9*60 + 15).Value()
		require.NoError(t, err)
		assert.Equal(t, "09:15:00", v)
	})

	t.Run("value out of range", func(t *testing.T) {
		_, err := TimeOfDay(minutesPerDay).Value()
		assert.Error(t, err)
	})

	t.Run("scan string", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.Scan("10:30:00"))
		assert.Equal(t, TimeOfDay(10*60+30), tod)
	})

	t.Run("scan bytes", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.Scan([]byte("08:00:00")))
		assert.Equal(t, TimeOfDay(8*60), tod)
	})

	t.Run("scan time.Time", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.Scan(time.Date(0, 1, 1, 13, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeOfDay(13*60+45), tod)
	})

	t.Run("scan unsupported type", func(t *testing.T) {
		var tod TimeOfDay
		assert.Error(t, tod.Scan(42))
	})
}
