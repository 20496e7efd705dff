package models

// Requests for chart HTTP endpoints. Defined in domain for reuse by the CLI.

type ChartRequest struct {
	Year   int    `query:"year" json:"year" validate:"required,gte=1,lte=9999"`
	Month  int    `query:"month" json:"month" validate:"required,gte=1,lte=12"`
	Day    int    `query:"day" json:"day" validate:"required,gte=1,lte=31"`
	Hour   int    `query:"hour" json:"hour" validate:"gte=0,lte=23"`
	Gender string `query:"gender" json:"gender" default:"男" validate:"oneof=男 女 male female m f M F"`
}

// Moment converts the request into a CalendarMoment.
func (r ChartRequest) Moment() CalendarMoment {
	return CalendarMoment{Year: r.Year, Month: r.Month, Day: r.Day, Hour: r.Hour}
}
