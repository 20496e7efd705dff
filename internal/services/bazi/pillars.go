package bazi

import "github.com/csg8/suanmingapp/internal/domain/models"

// YearEpochOffset aligns year ordinals so that 4 CE maps to 甲子.
const YearEpochOffset = 4

// FourPillars derives the simplified year, month, day and hour pillars of m.
// Month and day use their calendar numbers as ordinals directly.
func FourPillars(m models.CalendarMoment) models.FourPillars {
	var p models.FourPillars
	p[models.PillarYear] = StemBranch(m.Year - YearEpochOffset)
	p[models.PillarMonth] = StemBranch(m.Month)
	p[models.PillarDay] = StemBranch(m.Day)
	p[models.PillarHour] = HourPillar(m.Hour)
	return p
}

// HourPillar takes its stem from the hour and its branch from the two-hour
// bucket. The two come from different integers, so the pair may break parity
// (e.g. hour 1 gives 乙子).
func HourPillar(hour int) models.StemBranch {
	return models.StemBranch{
		Stem:   floorMod(hour, models.NumStems),
		Branch: floorMod(hour/2, models.NumBranches),
	}
}
