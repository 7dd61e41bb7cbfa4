// Package bsdate converts Gregorian (AD) dates to the Bikram Sambat (BS) calendar.
package bsdate

import (
	"errors"
	"fmt"
	"time"
)

// ErrOutOfRange is returned for dates outside the supported BS years.
var ErrOutOfRange = errors.New("bsdate: date outside supported range")

const (
	// MinYear and MaxYear bound the BS years covered by the month table.
	MinYear = 2000
	MaxYear = MinYear + len(monthDays) - 1

	layout = "2006-01-02"
)

// epoch is the Gregorian day of BS 2000-01-01.
var epoch = time.Date(1943, time.April, 14, 0, 0, 0, 0, time.UTC)

// monthDays holds the length of each BS month, one row per year starting at MinYear.
var monthDays = [...][12]int{
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2000
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2010
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2020
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2030
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{30, 32, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2040
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2050
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2060
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{30, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}, // 2070
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}, // 2080
	{31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30},
	{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30},
	{31, 32, 31, 32, 30, 31, 30, 30, 29, 30, 30, 30},
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	{31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30},
	{30, 31, 32, 32, 30, 31, 30, 30, 29, 30, 30, 30},
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2090
}

// Date is a Bikram Sambat calendar date.
type Date struct {
	Year  int
	Month int // 1-12, Baisakh = 1
	Day   int
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// FromAD converts the calendar day of t (its own location is ignored) to BS.
func FromAD(t time.Time) (Date, error) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(epoch) {
		return Date{}, ErrOutOfRange
	}
	remaining := int(day.Sub(epoch).Hours() / 24)

	for i, months := range monthDays {
		for m, n := range months {
			if remaining < n {
				return Date{Year: MinYear + i, Month: m + 1, Day: remaining + 1}, nil
			}
			remaining -= n
		}
	}
	return Date{}, ErrOutOfRange
}

// ParseAD parses an ISO "YYYY-MM-DD" Gregorian date and converts it to BS.
func ParseAD(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("bsdate: parse %q: %w", s, err)
	}
	return FromAD(t)
}

// ToAD converts a BS date back to its Gregorian day.
func ToAD(d Date) (time.Time, error) {
	i := d.Year - MinYear
	if i < 0 || i >= len(monthDays) || d.Month < 1 || d.Month > 12 {
		return time.Time{}, ErrOutOfRange
	}
	if d.Day < 1 || d.Day > monthDays[i][d.Month-1] {
		return time.Time{}, fmt.Errorf("bsdate: day %d invalid for %d-%02d", d.Day, d.Year, d.Month)
	}
	days := d.Day - 1
	for y := 0; y < i; y++ {
		for _, n := range monthDays[y] {
			days += n
		}
	}
	for m := 0; m < d.Month-1; m++ {
		days += monthDays[i][m]
	}
	return epoch.AddDate(0, 0, days), nil
}
