// Package bazi implements the sexagenary cycle, the Four Pillars and the
// five-element tally.
package bazi

import "github.com/csg8/suanmingapp/internal/domain/models"

// StemBranch returns the cycle pair at ordinal n. Stem and branch are both
// reduced from the same n, so the result always shares parity.
func StemBranch(n int) models.StemBranch {
	return models.StemBranch{
		Stem:   floorMod(n, models.NumStems),
		Branch: floorMod(n, models.NumBranches),
	}
}

// Zodiac returns the zodiac animal of a branch index.
func Zodiac(branch int) string {
	return models.Zodiacs[floorMod(branch, models.NumBranches)]
}

func floorMod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
