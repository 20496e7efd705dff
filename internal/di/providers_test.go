package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg8/suanmingapp/internal/domain/models"
	internalrepo "github.com/csg8/suanmingapp/internal/repository"
	"github.com/csg8/suanmingapp/internal/services/lunar"
	"github.com/csg8/suanmingapp/pkg/config"
	applogger "github.com/csg8/suanmingapp/pkg/logger"
	"github.com/csg8/suanmingapp/pkg/metrics"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Metrics.Enabled = false
	cfg.Log.Output = "stderr"
	return cfg
}

func TestProvideLunarConverter(t *testing.T) {
	cfg := testConfig(t)
	for _, name := range []string{lunar.ProviderCalendar, lunar.ProviderIdentity, lunar.ProviderHTTP} {
		cfg.Lunar.Provider = name
		c, err := ProvideLunarConverter(cfg)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	cfg.Lunar.Provider = "moon"
	_, err := ProvideLunarConverter(cfg)
	assert.Error(t, err)
}

func TestDisabledInfrastructure(t *testing.T) {
	cfg := testConfig(t)
	l := applogger.Nop()

	cfg.Cache.Enabled = false
	c, err := ProvideCache(cfg, l)
	require.NoError(t, err)
	assert.Nil(t, c)

	archive, err := ProvideChartArchive(cfg, l)
	require.NoError(t, err)
	assert.IsType(t, internalrepo.NoopArchive{}, archive)

	pub, err := ProvideEventPublisher(cfg)
	require.NoError(t, err)
	assert.IsType(t, internalrepo.NoopPublisher{}, pub)

	assert.IsType(t, metrics.Nop{}, ProvideMetrics(cfg))

	cfg.Server.RateLimit.Enabled = false
	assert.Nil(t, ProvideRateLimiter(cfg))
	cfg.Server.RateLimit.Enabled = true
	assert.NotNil(t, ProvideRateLimiter(cfg))
}

func TestInitializeChartService(t *testing.T) {
	cfg := testConfig(t)
	cfg.Lunar.Provider = lunar.ProviderIdentity

	svc, err := InitializeChartService(cfg)
	require.NoError(t, err)
	assert.Equal(t, lunar.ProviderIdentity, svc.Provider())

	r, err := svc.BaZi(context.Background(), models.CalendarMoment{Year: 2000, Month: 1, Day: 1}, models.Male)
	require.NoError(t, err)
	assert.Equal(t, "龙", r.Zodiac)
}
