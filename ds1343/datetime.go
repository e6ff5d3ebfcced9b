package ds1343

import (
	"errors"
	"fmt"
	"time"
)

// UnknownYearDay marks a DateTime whose day of year was not read from the chip.
const UnknownYearDay = -1

var ErrInvalidTime = errors.New("ds1343: invalid time")

// DateTime is the calendar time held in the clock registers. Year is absolute and must lie in 2000-2099. Weekday is
// stored raw: the chip does not derive it from the date, and only its low two bits survive a write (see SetDateTime).
// Weekday uses Go's numbering with Sunday as 0, so the days truncated by the write mask are Thursday to Saturday.
type DateTime struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday time.Weekday
	YearDay int
}

// FromTime breaks t down into a DateTime in t's location.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: t.Weekday(),
		YearDay: t.YearDay(),
	}
}

// Time returns dt as a time.Time in loc. Weekday and YearDay are ignored.
func (dt DateTime) Time(loc *time.Location) time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, 0, loc)
}

// Validate checks every field against the range its register can hold, and the day against the length of the month.
func (dt DateTime) Validate() error {
	switch {
	case dt.Year < century || dt.Year >= century+100:
		return fmt.Errorf("%w: year %d out of range", ErrInvalidTime, dt.Year)
	case dt.Month < time.January || dt.Month > time.December:
		return fmt.Errorf("%w: month %d out of range", ErrInvalidTime, dt.Month)
	case dt.Day < 1 || dt.Day > 31:
		return fmt.Errorf("%w: day %d out of range", ErrInvalidTime, dt.Day)
	case dt.Hour < 0 || dt.Hour > 23:
		return fmt.Errorf("%w: hour %d out of range", ErrInvalidTime, dt.Hour)
	case dt.Minute < 0 || dt.Minute > 59:
		return fmt.Errorf("%w: minute %d out of range", ErrInvalidTime, dt.Minute)
	case dt.Second < 0 || dt.Second > 59:
		return fmt.Errorf("%w: second %d out of range", ErrInvalidTime, dt.Second)
	case dt.Weekday < time.Sunday || dt.Weekday > time.Saturday:
		return fmt.Errorf("%w: weekday %d out of range", ErrInvalidTime, dt.Weekday)
	}
	if time.Date(dt.Year, dt.Month, dt.Day, 0, 0, 0, 0, time.UTC).Day() != dt.Day {
		return fmt.Errorf("%w: day %d out of range for %v %d", ErrInvalidTime, dt.Day, dt.Month, dt.Year)
	}
	return nil
}

// TimeInput selects the time written by SetDateTime. It is one of Explicit, EpochSeconds or Default.
type TimeInput interface {
	dateTime(loc *time.Location) DateTime
}

type explicitInput DateTime

type epochInput int64

type defaultInput struct{}

// Explicit sets the clock to dt as given.
func Explicit(dt DateTime) TimeInput { return explicitInput(dt) }

// EpochSeconds sets the clock to the Unix time sec, broken down in the configured location.
func EpochSeconds(sec int64) TimeInput { return epochInput(sec) }

// Default sets the clock to the start of its range, 2000-01-01 00:00:00. The Unix epoch itself is not representable
// by the year register.
func Default() TimeInput { return defaultInput{} }

func (in explicitInput) dateTime(*time.Location) DateTime { return DateTime(in) }

func (in epochInput) dateTime(loc *time.Location) DateTime {
	return FromTime(time.Unix(int64(in), 0).In(loc))
}

func (defaultInput) dateTime(loc *time.Location) DateTime {
	return FromTime(time.Date(century, time.January, 1, 0, 0, 0, 0, loc))
}
