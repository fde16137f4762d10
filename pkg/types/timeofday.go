package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay represents a wall-clock time as whole minutes since midnight.
// All interval arithmetic in the booking engine happens on this integer
// form; "HH:MM" / "HH:MM:SS" strings exist only at the API and database
// boundaries.
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" (seconds are dropped).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hh, mm, ss int

	n, err := fmt.Sscanf(s, "%d:%d:%d", &hh, &mm, &ss)
	if err != nil || n < 2 {
		n, err = fmt.Sscanf(s, "%d:%d", &hh, &mm)
		if err != nil || n != 2 {
			return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
		}
	}

	if hh < 0 || hh > 23 || mm < 0 || mm > 59 || ss < 0 || ss > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}

	return TimeOfDay(hh*60 + mm), nil
}

// FromClock truncates a time.Time to its minute of day.
func FromClock(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Valid reports whether the value lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

// Minutes returns the value as plain minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// AddMinutes returns the time shifted forward by n minutes. The result may
// exceed the day boundary; callers compare it against a closing time before
// using it.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	return t + TimeOfDay(n)
}

// Before reports t < other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After reports t > other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// String formats as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// MarshalJSON encodes as an "HH:MM" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes from an "HH:MM" or "HH:MM:SS" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value stores the time as "HH:MM:SS" for TIME columns.
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("time of day %d out of range", int(t))
	}
	return fmt.Sprintf("%02d:%02d:00", int(t)/60, int(t)%60), nil
}

// Scan reads TIME columns returned as string, []byte or time.Time.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	case time.Time:
		*t = FromClock(v)
	case nil:
		*t = 0
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
	return nil
}
