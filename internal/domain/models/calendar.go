package models

import (
	"fmt"
	"time"
)

// CalendarMoment is a solar birth moment at hour resolution.
type CalendarMoment struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
	Hour  int `json:"hour"`
}

// MomentFromTime truncates t to an hour-resolution moment in t's location.
func MomentFromTime(t time.Time) CalendarMoment {
	return CalendarMoment{Year: t.Year(), Month: int(t.Month()), Day: t.Day(), Hour: t.Hour()}
}

// Validate rejects out-of-range fields and days that do not exist in the
// given month. Nothing is clamped.
func (m CalendarMoment) Validate() error {
	if m.Month < 1 || m.Month > 12 {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidMoment, m.Month)
	}
	if m.Day < 1 || m.Day > 31 {
		return fmt.Errorf("%w: day %d out of range 1-31", ErrInvalidMoment, m.Day)
	}
	if m.Day > DaysIn(m.Year, m.Month) {
		return fmt.Errorf("%w: day %d does not exist in %04d-%02d", ErrInvalidMoment, m.Day, m.Year, m.Month)
	}
	if m.Hour < 0 || m.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range 0-23", ErrInvalidMoment, m.Hour)
	}
	return nil
}

func (m CalendarMoment) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d时", m.Year, m.Month, m.Day, m.Hour)
}

// DaysIn returns the number of days of a proleptic Gregorian month.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Gender is carried through charts as metadata.
type Gender string

const (
	Male   Gender = "男"
	Female Gender = "女"
)

// ParseGender accepts the Chinese labels and their English equivalents.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "男", "male", "m", "M":
		return Male, nil
	case "女", "female", "f", "F":
		return Female, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
}

// LunarDate is the output of a lunar-conversion collaborator.
type LunarDate struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Hour  int    `json:"hour"`
	Leap  bool   `json:"leap,omitempty"`
	Label string `json:"label,omitempty"`
}

// Validate checks the ranges the chart engine relies on.
func (l LunarDate) Validate() error {
	if l.Month < 1 || l.Month > 12 {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidLunarDate, l.Month)
	}
	if l.Day < 1 || l.Day > 30 {
		return fmt.Errorf("%w: day %d out of range 1-30", ErrInvalidLunarDate, l.Day)
	}
	if l.Hour < 0 || l.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range 0-23", ErrInvalidLunarDate, l.Hour)
	}
	return nil
}

// HourBranch returns the branch index of the two-hour bucket (时辰) of Hour.
func (l LunarDate) HourBranch() int { return (l.Hour / 2) % NumBranches }
