package models

// Element is one of the five elements (五行).
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
	NumElements
)

var elementNames = [NumElements]string{"木", "火", "土", "金", "水"}

// Elements lists the five elements in display order.
var Elements = [NumElements]Element{Wood, Fire, Earth, Metal, Water}

func (e Element) String() string {
	if e < 0 || e >= NumElements {
		return "?"
	}
	return elementNames[e]
}

// FiveElementProfile counts pillar stems per element, indexed by Element.
type FiveElementProfile [NumElements]int

// Count returns the tally for e.
func (p FiveElementProfile) Count(e Element) int { return p[e] }

// Total sums all tallies.
func (p FiveElementProfile) Total() int {
	total := 0
	for _, c := range p {
		total += c
	}
	return total
}

// Dominant returns the element with the highest count; ties go to the
// earlier element in display order.
func (p FiveElementProfile) Dominant() Element {
	best := Wood
	for _, e := range Elements {
		if p[e] > p[best] {
			best = e
		}
	}
	return best
}

// Missing returns the elements with a zero count, in display order.
func (p FiveElementProfile) Missing() []Element {
	var out []Element
	for _, e := range Elements {
		if p[e] == 0 {
			out = append(out, e)
		}
	}
	return out
}
