package presenter

import (
	"github.com/csg8/suanmingapp/internal/domain/models"
	"github.com/csg8/suanmingapp/internal/services/bazi"
)

type StarEntry struct {
	Name    string `json:"name"`
	Quality string `json:"quality"`
}

type PalaceEntry struct {
	Name    string `json:"name"`
	Branch  string `json:"branch"`
	Meaning string `json:"meaning"`
}

type VerdictEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// CatalogView lists the fixed reference data every chart is built from.
type CatalogView struct {
	Stems    []string       `json:"stems"`
	Branches []string       `json:"branches"`
	Zodiacs  []string       `json:"zodiacs"`
	Elements *OrderedMap    `json:"elements"`
	Palaces  []PalaceEntry  `json:"palaces"`
	Stars    []StarEntry    `json:"stars"`
	Verdicts []VerdictEntry `json:"verdicts"`
}

// Catalog renders the stem, branch, element, palace, star and verdict tables.
// elements maps each element to the stems that belong to it.
func Catalog() CatalogView {
	v := CatalogView{
		Stems:    append([]string(nil), models.Stems[:]...),
		Branches: append([]string(nil), models.Branches[:]...),
		Zodiacs:  append([]string(nil), models.Zodiacs[:]...),
		Elements: NewOrderedMap(),
	}

	byElement := make(map[models.Element][]string, models.NumElements)
	for i, s := range models.Stems {
		e := bazi.ElementOf(i)
		byElement[e] = append(byElement[e], s)
	}
	for _, e := range models.Elements {
		v.Elements.Set(e.String(), byElement[e])
	}

	for _, p := range models.Palaces() {
		v.Palaces = append(v.Palaces, PalaceEntry{Name: p.String(), Branch: p.Branch(), Meaning: p.Meaning()})
	}
	for _, s := range models.Stars() {
		v.Stars = append(v.Stars, StarEntry{Name: s.String(), Quality: string(s.Quality())})
	}
	for _, vd := range models.Verdicts() {
		v.Verdicts = append(v.Verdicts, VerdictEntry{Name: vd.String(), Score: vd.Score()})
	}
	return v
}
