package models

import "fmt"

const (
	NumStems    = 10
	NumBranches = 12
	CycleLength = 60
)

// Stems are the ten heavenly stems (天干) in cycle order.
var Stems = [NumStems]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Branches are the twelve earthly branches (地支) in cycle order.
var Branches = [NumBranches]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// Zodiacs maps a branch index to its zodiac animal (生肖).
var Zodiacs = [NumBranches]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}

// StemBranch is one stem-branch pair of the sexagenary cycle.
type StemBranch struct {
	Stem   int `json:"stem"`
	Branch int `json:"branch"`
}

// StemName returns the display character of the stem.
func (sb StemBranch) StemName() string { return Stems[sb.Stem] }

// BranchName returns the display character of the branch.
func (sb StemBranch) BranchName() string { return Branches[sb.Branch] }

// String renders the pair as two characters, e.g. "庚辰".
func (sb StemBranch) String() string {
	if sb.Stem < 0 || sb.Stem >= NumStems || sb.Branch < 0 || sb.Branch >= NumBranches {
		return fmt.Sprintf("StemBranch(%d,%d)", sb.Stem, sb.Branch)
	}
	return sb.StemName() + sb.BranchName()
}

// Valid reports whether the pair is one of the 60 members of the cycle:
// both indices in range and of equal parity.
func (sb StemBranch) Valid() bool {
	if sb.Stem < 0 || sb.Stem >= NumStems || sb.Branch < 0 || sb.Branch >= NumBranches {
		return false
	}
	return sb.Stem%2 == sb.Branch%2
}

// Ordinal returns the 0-59 cycle position of a valid pair, or -1.
func (sb StemBranch) Ordinal() int {
	if !sb.Valid() {
		return -1
	}
	for n := sb.Stem; n < CycleLength; n += NumStems {
		if n%NumBranches == sb.Branch {
			return n
		}
	}
	return -1
}

// Pillar positions within FourPillars.
const (
	PillarYear = iota
	PillarMonth
	PillarDay
	PillarHour
	NumPillars
)

// PillarNames are the keys used when pillars are displayed.
var PillarNames = [NumPillars]string{"year", "month", "day", "hour"}

// FourPillars holds the year, month, day and hour pairs, in that order.
type FourPillars [NumPillars]StemBranch

func (p FourPillars) Year() StemBranch  { return p[PillarYear] }
func (p FourPillars) Month() StemBranch { return p[PillarMonth] }
func (p FourPillars) Day() StemBranch   { return p[PillarDay] }
func (p FourPillars) Hour() StemBranch  { return p[PillarHour] }

// Strings returns the four pillars as display strings.
func (p FourPillars) Strings() [NumPillars]string {
	var out [NumPillars]string
	for i, sb := range p {
		out[i] = sb.String()
	}
	return out
}
