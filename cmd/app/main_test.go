package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/csg8/suanmingapp/internal/domain/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBaZiCommand(t *testing.T) {
	out, err := execute(t, "bazi", "--config", "", "--lunar", "identity",
		"--year", "2000", "--month", "1", "--day", "1", "--hour", "0")
	require.NoError(t, err)
	require.True(t, gjson.Valid(out), out)

	assert.Equal(t, "庚辰", gjson.Get(out, "pillars.year").String())
	assert.Equal(t, "乙丑", gjson.Get(out, "pillars.month").String())
	assert.Equal(t, "乙丑", gjson.Get(out, "pillars.day").String())
	assert.Equal(t, "甲子", gjson.Get(out, "pillars.hour").String())
	assert.Equal(t, "龙", gjson.Get(out, "zodiac").String())
}

func TestZiWeiCommandFromBirth(t *testing.T) {
	out, err := execute(t, "ziwei", "--config", "", "--lunar", "identity",
		"--birth", "2000-01-01 00:30", "--tz", "UTC", "--gender", "f")
	require.NoError(t, err)
	require.True(t, gjson.Valid(out), out)

	assert.Len(t, gjson.Get(out, "palaces").Array(), 12)
	assert.Equal(t, "女", gjson.Get(out, "birth_info.gender").String())
	assert.Equal(t, int64(0), gjson.Get(out, "solar.hour").Int())
}

func TestChartCommandErrors(t *testing.T) {
	_, err := execute(t, "bazi", "--config", "")
	assert.Error(t, err)

	_, err = execute(t, "bazi", "--config", "", "--lunar", "identity",
		"--year", "2001", "--month", "2", "--day", "29")
	assert.ErrorIs(t, err, models.ErrInvalidMoment)

	_, err = execute(t, "ziwei", "--config", "", "--year", "2000", "--month", "1", "--day", "1", "--gender", "x")
	assert.ErrorIs(t, err, models.ErrInvalidGender)

	_, err = execute(t, "ziwei", "--config", "", "--birth", "yesterday")
	assert.Error(t, err)

	_, err = execute(t, "ziwei", "--config", "", "--lunar", "moon", "--year", "2000", "--month", "1", "--day", "1")
	assert.Error(t, err)
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	assert.Len(t, gjson.Get(out, "stems").Array(), 10)
	assert.Len(t, gjson.Get(out, "branches").Array(), 12)
}

func TestDefaultConfigPathFallsBackToDefaults(t *testing.T) {
	// No config/config.yaml exists next to this package.
	out, err := execute(t, "bazi", "--lunar", "identity", "--year", "2000", "--month", "1", "--day", "1")
	require.NoError(t, err)
	assert.Equal(t, "庚辰", gjson.Get(out, "pillars.year").String())

	_, err = execute(t, "bazi", "--config", "missing.yaml", "--lunar", "identity",
		"--year", "2000", "--month", "1", "--day", "1")
	assert.ErrorContains(t, err, "read config")
}
