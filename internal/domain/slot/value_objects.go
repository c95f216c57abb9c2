package slot

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("time of day out of range")

// TimeOfDay is a wall-clock time without a date, stored as minutes since
// midnight. Appointment times are derived by adding whole minutes, so a
// minute resolution is all the schedule ever needs.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay parses the "15:04" form used by the HTTP layer.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

// TimeOfDayFromMinutes reconstructs a value read back from storage.
func TimeOfDayFromMinutes(minutes int) TimeOfDay {
	return TimeOfDay{minutes: minutes}
}

func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + m}
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
