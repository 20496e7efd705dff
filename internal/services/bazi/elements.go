package bazi

import "github.com/csg8/suanmingapp/internal/domain/models"

// ElementOf maps a stem index to its element; stems pair up in order.
func ElementOf(stem int) models.Element {
	return models.Element(floorMod(stem, models.NumStems) / 2)
}

// FiveElements tallies the element of each pillar's stem.
func FiveElements(p models.FourPillars) models.FiveElementProfile {
	var profile models.FiveElementProfile
	for _, sb := range p {
		profile[ElementOf(sb.Stem)]++
	}
	return profile
}

// Read assembles the full Four-Pillars reading for a validated moment.
func Read(m models.CalendarMoment, g models.Gender, lunar models.LunarDate) models.BaZiReading {
	pillars := FourPillars(m)
	return models.BaZiReading{
		Moment:   m,
		Gender:   g,
		Pillars:  pillars,
		Elements: FiveElements(pillars),
		Zodiac:   Zodiac(pillars.Year().Branch),
		Lunar:    lunar,
	}
}
