package presenter

import (
	"github.com/csg8/suanmingapp/internal/domain/models"
)

// BirthInfo echoes the (lunar) birth fields a chart was computed from.
type BirthInfo struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Day    int    `json:"day"`
	Hour   int    `json:"hour"`
	Gender string `json:"gender"`
}

// LunarView is the display form of a lunar date.
type LunarView struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Hour  int    `json:"hour"`
	Leap  bool   `json:"leap"`
	Label string `json:"label,omitempty"`
}

// PalaceView is one palace of the chart with everything derived for it.
type PalaceView struct {
	Name    string   `json:"name"`
	Branch  string   `json:"branch"`
	Meaning string   `json:"meaning"`
	Verdict string   `json:"verdict"`
	Score   int      `json:"score"`
	Stars   []string `json:"stars"`
	Text    string   `json:"text"`
}

// ZiWeiView is the serialized palace chart.
type ZiWeiView struct {
	MingGong       string                `json:"ming_gong"`
	MingGongBranch string                `json:"ming_gong_branch"`
	MainStars      *OrderedMap           `json:"main_stars"`
	Predictions    *OrderedMap           `json:"predictions"`
	Palaces        []PalaceView          `json:"palaces"`
	BirthInfo      BirthInfo             `json:"birth_info"`
	Solar          models.CalendarMoment `json:"solar"`
	Lunar          LunarView             `json:"lunar"`
}

// BaZiView is the serialized Four-Pillars reading.
type BaZiView struct {
	Pillars      *OrderedMap `json:"pillars"`
	FiveElements *OrderedMap `json:"five_elements"`
	Dominant     string      `json:"dominant_element"`
	Missing      []string    `json:"missing_elements"`
	Zodiac       string      `json:"zodiac"`
	Lunar        LunarView   `json:"lunar"`
	BirthInfo    BirthInfo   `json:"birth_info"`
}

// ZiWei renders a palace chart. main_stars follows star catalog order and
// predictions follows palace order. birth_info carries the lunar fields the
// chart was placed from; m is echoed as solar.
func ZiWei(c models.PalaceChart, m models.CalendarMoment) ZiWeiView {
	stars := NewOrderedMap()
	for _, s := range models.Stars() {
		stars.Set(s.String(), c.StarPositions[s].String())
	}

	preds := NewOrderedMap()
	palaces := make([]PalaceView, 0, models.NumPalaces)
	for _, p := range models.Palaces() {
		pr := c.Predictions[p]
		preds.Set(p.String(), pr.Text)

		names := make([]string, 0, len(pr.Stars))
		for _, s := range pr.Stars {
			names = append(names, s.String())
		}
		palaces = append(palaces, PalaceView{
			Name:    p.String(),
			Branch:  p.Branch(),
			Meaning: p.Meaning(),
			Verdict: pr.Verdict.String(),
			Score:   pr.Verdict.Score(),
			Stars:   names,
			Text:    pr.Text,
		})
	}

	return ZiWeiView{
		MingGong:       c.MingGong.String(),
		MingGongBranch: c.MingGong.Branch(),
		MainStars:      stars,
		Predictions:    preds,
		Palaces:        palaces,
		BirthInfo: BirthInfo{
			Year:   c.Lunar.Year,
			Month:  c.Lunar.Month,
			Day:    c.Lunar.Day,
			Hour:   c.Lunar.Hour,
			Gender: string(c.Gender),
		},
		Solar: m,
		Lunar: lunarView(c.Lunar),
	}
}

// BaZi renders a Four-Pillars reading. birth_info carries the solar moment
// the pillars were computed from.
func BaZi(r models.BaZiReading) BaZiView {
	pillars := NewOrderedMap()
	for i, sb := range r.Pillars {
		pillars.Set(models.PillarNames[i], sb.String())
	}

	elements := NewOrderedMap()
	for _, e := range models.Elements {
		elements.Set(e.String(), r.Elements.Count(e))
	}

	missing := make([]string, 0)
	for _, e := range r.Elements.Missing() {
		missing = append(missing, e.String())
	}

	return BaZiView{
		Pillars:      pillars,
		FiveElements: elements,
		Dominant:     r.Elements.Dominant().String(),
		Missing:      missing,
		Zodiac:       r.Zodiac,
		Lunar:        lunarView(r.Lunar),
		BirthInfo: BirthInfo{
			Year:   r.Moment.Year,
			Month:  r.Moment.Month,
			Day:    r.Moment.Day,
			Hour:   r.Moment.Hour,
			Gender: string(r.Gender),
		},
	}
}

func lunarView(l models.LunarDate) LunarView {
	return LunarView{Year: l.Year, Month: l.Month, Day: l.Day, Hour: l.Hour, Leap: l.Leap, Label: l.Label}
}
