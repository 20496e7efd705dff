package service

import (
	"context"

	"github.com/csg8/suanmingapp/internal/domain/models"
)

// LunarConverter maps a solar moment to its lunar year/month/day/hour.
// Implementations are deterministic and free of side effects on the caller.
type LunarConverter interface {
	ToLunar(ctx context.Context, m models.CalendarMoment) (models.LunarDate, error)
	Name() string
}
