// Package lunar provides the lunar-conversion collaborators used by the
// chart engine.
package lunar

import (
	"context"
	"fmt"

	"github.com/csg8/suanmingapp/internal/domain/models"
	domsvc "github.com/csg8/suanmingapp/internal/domain/service"
)

// Provider names accepted in configuration.
const (
	ProviderCalendar = "calendar"
	ProviderIdentity = "identity"
	ProviderHTTP     = "http"
)

// IdentityConverter reports the solar fields unchanged as the lunar date.
// Solar day 31 has no lunar counterpart and fails lunar validation upstream.
type IdentityConverter struct{}

func NewIdentityConverter() *IdentityConverter { return &IdentityConverter{} }

func (IdentityConverter) Name() string { return ProviderIdentity }

func (IdentityConverter) ToLunar(_ context.Context, m models.CalendarMoment) (models.LunarDate, error) {
	return models.LunarDate{
		Year:  m.Year,
		Month: m.Month,
		Day:   m.Day,
		Hour:  m.Hour,
		Label: fmt.Sprintf("%d年%d月%d日%d时", m.Year, m.Month, m.Day, m.Hour),
	}, nil
}

var _ domsvc.LunarConverter = (*IdentityConverter)(nil)
