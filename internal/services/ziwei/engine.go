// Package ziwei builds the twelve-palace destiny chart (紫微斗数命盘).
package ziwei

import (
	"context"
	"fmt"
	"strings"

	"github.com/csg8/suanmingapp/internal/domain/models"
	domsvc "github.com/csg8/suanmingapp/internal/domain/service"
)

// MingGong locates the life palace from the lunar month and the hour bucket.
func MingGong(l models.LunarDate) models.Palace {
	return models.Palace((l.Month - 1 + l.HourBranch()) % models.NumPalaces)
}

// PlaceStars offsets every catalog star from the life palace by its rank.
// Fourteen stars on twelve palaces, so some palaces hold two.
func PlaceStars(ming models.Palace) models.StarPositions {
	var pos models.StarPositions
	for _, s := range models.Stars() {
		pos[s] = models.Palace((int(ming) + s.Rank()) % models.NumPalaces)
	}
	return pos
}

// Occupants inverts star positions into per-palace star lists, each in
// catalog order.
func Occupants(pos models.StarPositions) [models.NumPalaces][]models.Star {
	var out [models.NumPalaces][]models.Star
	for _, s := range models.Stars() {
		p := pos[s]
		out[p] = append(out[p], s)
	}
	return out
}

// Classify turns auspicious/inauspicious counts into a verdict.
// The extremes need a margin above one; a plain majority gives 吉 or 凶.
func Classify(good, bad int) models.Verdict {
	switch {
	case good > bad+1:
		return models.VerdictGreatFortune
	case good > bad:
		return models.VerdictFortune
	case good == bad:
		return models.VerdictNeutral
	case bad > good+1:
		return models.VerdictGreatMisfortune
	default:
		return models.VerdictMisfortune
	}
}

// Tally counts the auspicious and inauspicious stars; neutral stars count
// toward neither.
func Tally(stars []models.Star) (good, bad int) {
	for _, s := range stars {
		switch s.Quality() {
		case models.Auspicious:
			good++
		case models.Inauspicious:
			bad++
		}
	}
	return good, bad
}

// PredictPalace derives the verdict and text of one palace.
func PredictPalace(p models.Palace, stars []models.Star) models.Prediction {
	if len(stars) == 0 {
		return models.Prediction{
			Verdict: models.VerdictNeutral,
			Text:    fmt.Sprintf("%s - %s\n无主星入驻", models.VerdictNeutral, p.Meaning()),
		}
	}
	verdict := Classify(Tally(stars))
	names := make([]string, len(stars))
	for i, s := range stars {
		names[i] = s.String()
	}
	return models.Prediction{
		Verdict: verdict,
		Stars:   stars,
		Text:    fmt.Sprintf("%s - %s\n落星：%s", verdict, p.Meaning(), strings.Join(names, "、")),
	}
}

// Predict derives a prediction for every palace, occupied or not.
func Predict(pos models.StarPositions) [models.NumPalaces]models.Prediction {
	var out [models.NumPalaces]models.Prediction
	occ := Occupants(pos)
	for _, p := range models.Palaces() {
		out[p] = PredictPalace(p, occ[p])
	}
	return out
}

// Build computes the chart of an already converted lunar date. Gender is
// recorded but does not influence placement.
func Build(l models.LunarDate, g models.Gender) models.PalaceChart {
	ming := MingGong(l)
	pos := PlaceStars(ming)
	return models.PalaceChart{
		MingGong:      ming,
		StarPositions: pos,
		Predictions:   Predict(pos),
		Lunar:         l,
		Gender:        g,
	}
}

// Engine runs the full chart derivation against a lunar collaborator.
type Engine struct {
	lunar domsvc.LunarConverter
}

func NewEngine(lunar domsvc.LunarConverter) *Engine {
	return &Engine{lunar: lunar}
}

// Converter exposes the lunar collaborator used by the engine.
func (e *Engine) Converter() domsvc.LunarConverter { return e.lunar }

// Generate validates m, converts it and builds the chart. Collaborator
// errors are returned unchanged.
func (e *Engine) Generate(ctx context.Context, m models.CalendarMoment, g models.Gender) (models.PalaceChart, error) {
	if err := m.Validate(); err != nil {
		return models.PalaceChart{}, err
	}
	l, err := e.lunar.ToLunar(ctx, m)
	if err != nil {
		return models.PalaceChart{}, err
	}
	if err := l.Validate(); err != nil {
		return models.PalaceChart{}, fmt.Errorf("%s: %w", e.lunar.Name(), err)
	}
	return Build(l, g), nil
}
