package bazi

import (
	"testing"

	"github.com/csg8/suanmingapp/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStemBranchResidues(t *testing.T) {
	for n := -500; n <= 500; n++ {
		sb := StemBranch(n)
		require.True(t, sb.Valid(), "n=%d gave %v", n, sb)
		assert.Equal(t, 0, (n-sb.Stem)%10, "stem residue for n=%d", n)
		assert.Equal(t, 0, (n-sb.Branch)%12, "branch residue for n=%d", n)
		assert.Equal(t, sb.Stem%2, sb.Branch%2, "parity for n=%d", n)
	}
}

func TestStemBranchCycleOf60(t *testing.T) {
	seen := make(map[models.StemBranch]int)
	for n := 0; n < models.CycleLength; n++ {
		sb := StemBranch(n)
		_, dup := seen[sb]
		require.False(t, dup, "pair %v repeated within one cycle", sb)
		seen[sb] = n
		assert.Equal(t, n, sb.Ordinal())
		assert.Equal(t, sb, StemBranch(n+models.CycleLength))
	}
	assert.Len(t, seen, 60)
	assert.Equal(t, "甲子", StemBranch(0).String())
	assert.Equal(t, "癸亥", StemBranch(59).String())
}

func TestFourPillarsGolden(t *testing.T) {
	m := models.CalendarMoment{Year: 2000, Month: 1, Day: 1, Hour: 0}
	p := FourPillars(m)

	assert.Equal(t, models.StemBranch{Stem: 6, Branch: 4}, p.Year())
	assert.Equal(t, [4]string{"庚辰", "乙丑", "乙丑", "甲子"}, p.Strings())
	assert.Equal(t, "龙", Zodiac(p.Year().Branch))
}

func TestFourPillarsDeterministic(t *testing.T) {
	m := models.CalendarMoment{Year: 1987, Month: 6, Day: 18, Hour: 13}
	first := FourPillars(m)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FourPillars(m))
	}
}

func TestHourPillarKeepsSourceAsymmetry(t *testing.T) {
	// hour 1: stem 1 (乙), bucket 0 (子)
	hp := HourPillar(1)
	assert.Equal(t, "乙子", hp.String())
	assert.False(t, hp.Valid())

	hp = HourPillar(23)
	assert.Equal(t, "丁亥", hp.String())
}

func TestFiveElements(t *testing.T) {
	p := FourPillars(models.CalendarMoment{Year: 2000, Month: 1, Day: 1, Hour: 0})
	profile := FiveElements(p)

	assert.Equal(t, 3, profile.Count(models.Wood))
	assert.Equal(t, 1, profile.Count(models.Metal))
	assert.Equal(t, models.Wood, profile.Dominant())
	assert.Equal(t, []models.Element{models.Fire, models.Earth, models.Water}, profile.Missing())
}

func TestFiveElementsAlwaysSumToFour(t *testing.T) {
	for year := 1900; year <= 2100; year += 7 {
		for month := 1; month <= 12; month++ {
			for hour := 0; hour < 24; hour += 5 {
				m := models.CalendarMoment{Year: year, Month: month, Day: (year+month)%28 + 1, Hour: hour}
				require.Equal(t, 4, FiveElements(FourPillars(m)).Total(), "moment %v", m)
			}
		}
	}
}

func TestElementOf(t *testing.T) {
	want := []models.Element{
		models.Wood, models.Wood, models.Fire, models.Fire, models.Earth,
		models.Earth, models.Metal, models.Metal, models.Water, models.Water,
	}
	for stem, e := range want {
		assert.Equal(t, e, ElementOf(stem), "stem %s", models.Stems[stem])
	}
}

func TestRead(t *testing.T) {
	m := models.CalendarMoment{Year: 2024, Month: 2, Day: 10, Hour: 12}
	lunar := models.LunarDate{Year: 2024, Month: 1, Day: 1, Hour: 12}
	r := Read(m, models.Female, lunar)

	assert.Equal(t, "甲辰", r.Pillars.Year().String())
	assert.Equal(t, "龙", r.Zodiac)
	assert.Equal(t, 4, r.Elements.Total())
	assert.Equal(t, lunar, r.Lunar)
	assert.Equal(t, models.Female, r.Gender)
}
