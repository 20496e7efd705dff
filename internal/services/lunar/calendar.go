package lunar

import (
	"context"
	"fmt"

	"github.com/6tail/lunar-go/calendar"

	"github.com/csg8/suanmingapp/internal/domain/models"
	domsvc "github.com/csg8/suanmingapp/internal/domain/service"
)

// Supported solar year range of the calendar tables.
const (
	MinCalendarYear = 1
	MaxCalendarYear = 9999
)

// CalendarConverter performs solar-to-lunar conversion with lunar-go.
type CalendarConverter struct{}

func NewCalendarConverter() *CalendarConverter { return &CalendarConverter{} }

func (CalendarConverter) Name() string { return ProviderCalendar }

func (CalendarConverter) ToLunar(_ context.Context, m models.CalendarMoment) (out models.LunarDate, err error) {
	if m.Year < MinCalendarYear || m.Year > MaxCalendarYear {
		return models.LunarDate{}, fmt.Errorf("%w: year %d outside %d-%d", models.ErrLunarUnavailable, m.Year, MinCalendarYear, MaxCalendarYear)
	}
	if InReformGap(m) {
		return models.LunarDate{}, fmt.Errorf("%w: %04d-%02d-%02d was skipped by the Gregorian reform", models.ErrLunarUnavailable, m.Year, m.Month, m.Day)
	}
	// lunar-go panics on solar dates it cannot place
	defer func() {
		if r := recover(); r != nil {
			out, err = models.LunarDate{}, fmt.Errorf("%w: %v", models.ErrLunarUnavailable, r)
		}
	}()
	l := calendar.NewSolar(m.Year, m.Month, m.Day, m.Hour, 0, 0).GetLunar()

	// lunar-go reports leap months as negative month numbers
	month := l.GetMonth()
	leap := month < 0
	if leap {
		month = -month
	}
	return models.LunarDate{
		Year:  l.GetYear(),
		Month: month,
		Day:   l.GetDay(),
		Hour:  l.GetHour(),
		Leap:  leap,
		Label: fmt.Sprintf("%s年%s月%s", l.GetYearInChinese(), l.GetMonthInChinese(), l.GetDayInChinese()),
	}, nil
}

// InReformGap reports whether m falls on 1582-10-05 through 1582-10-14, the
// days dropped when the Julian calendar gave way to the Gregorian one.
func InReformGap(m models.CalendarMoment) bool {
	return m.Year == 1582 && m.Month == 10 && m.Day >= 5 && m.Day <= 14
}

var _ domsvc.LunarConverter = (*CalendarConverter)(nil)
