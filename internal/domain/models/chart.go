package models

import "time"

const (
	NumPalaces = 12
	NumStars   = 14
)

// Palace indexes the twelve-slot ring. Palace i sits on branch i.
type Palace int

const (
	PalaceLife Palace = iota
	PalaceSiblings
	PalaceSpouse
	PalaceChildren
	PalaceWealth
	PalaceHealth
	PalaceTravel
	PalaceFriends
	PalaceCareer
	PalaceProperty
	PalaceFortune
	PalaceParents
)

var palaceNames = [NumPalaces]string{
	"命宫", "兄弟", "夫妻", "子女", "财帛", "疾厄",
	"迁移", "交友", "官禄", "田宅", "福德", "父母",
}

var palaceMeanings = [NumPalaces]string{
	"主性格、个性、人生走向",
	"主手足关系、同辈互动",
	"主婚姻、感情、伴侣",
	"主子女、后代、创造力",
	"主财运、收入、理财",
	"主健康、困难、化解",
	"主行动、变化、旅行",
	"主朋友、人际、社交",
	"主事业、地位、成就",
	"主房产、居所、投资",
	"主心理、福分、休闲",
	"主长辈、贵人、靠山",
}

func (p Palace) String() string  { return palaceNames[p] }
func (p Palace) Meaning() string { return palaceMeanings[p] }
func (p Palace) Branch() string  { return Branches[p] }

// Palaces lists the ring in declaration order.
func Palaces() [NumPalaces]Palace {
	var out [NumPalaces]Palace
	for i := range out {
		out[i] = Palace(i)
	}
	return out
}

// Quality is the static tag carried by a star.
type Quality string

const (
	Auspicious   Quality = "吉"
	Neutral      Quality = "中"
	Inauspicious Quality = "凶"
)

// Star indexes the fixed main-star catalog; the index is the catalog rank.
type Star int

var starNames = [NumStars]string{
	"紫微", "天机", "太阳", "武曲", "天同", "廉贞", "天府",
	"太阴", "贪狼", "巨门", "天相", "天梁", "七杀", "破军",
}

var starQualities = [NumStars]Quality{
	Auspicious, Auspicious, Auspicious, Auspicious, Auspicious, Inauspicious, Auspicious,
	Auspicious, Inauspicious, Neutral, Auspicious, Auspicious, Inauspicious, Inauspicious,
}

func (s Star) String() string   { return starNames[s] }
func (s Star) Quality() Quality { return starQualities[s] }
func (s Star) Rank() int        { return int(s) }

// Stars lists the catalog in declaration order.
func Stars() [NumStars]Star {
	var out [NumStars]Star
	for i := range out {
		out[i] = Star(i)
	}
	return out
}

// Verdict is the five-level fortune scale. Higher is better.
type Verdict int

const (
	VerdictGreatMisfortune Verdict = iota + 1
	VerdictMisfortune
	VerdictNeutral
	VerdictFortune
	VerdictGreatFortune
)

var verdictNames = map[Verdict]string{
	VerdictGreatFortune:    "大吉",
	VerdictFortune:         "吉",
	VerdictNeutral:         "平",
	VerdictMisfortune:      "凶",
	VerdictGreatMisfortune: "大凶",
}

func (v Verdict) String() string { return verdictNames[v] }

// Score is the 1-5 trend value of the verdict.
func (v Verdict) Score() int { return int(v) }

// Verdicts lists the scale from best to worst.
func Verdicts() []Verdict {
	return []Verdict{VerdictGreatFortune, VerdictFortune, VerdictNeutral, VerdictMisfortune, VerdictGreatMisfortune}
}

// StarPositions maps each star (by rank) to the palace it occupies.
type StarPositions [NumStars]Palace

// Prediction is the verdict and text derived for one palace.
type Prediction struct {
	Verdict Verdict `json:"verdict"`
	Stars   []Star  `json:"stars,omitempty"`
	Text    string  `json:"text"`
}

// PalaceChart is the destiny chart (命盘) of one request.
type PalaceChart struct {
	MingGong      Palace                 `json:"ming_gong"`
	StarPositions StarPositions          `json:"star_positions"`
	Predictions   [NumPalaces]Prediction `json:"predictions"`
	Lunar         LunarDate              `json:"lunar"`
	Gender        Gender                 `json:"gender"`
}

// BaZiReading is the Four-Pillars analysis of one request.
type BaZiReading struct {
	Moment   CalendarMoment     `json:"moment"`
	Gender   Gender             `json:"gender"`
	Pillars  FourPillars        `json:"pillars"`
	Elements FiveElementProfile `json:"elements"`
	Zodiac   string             `json:"zodiac"`
	Lunar    LunarDate          `json:"lunar"`
}

// ChartRecord is the archived form of a computed chart.
type ChartRecord struct {
	ID          string
	Kind        string
	Moment      CalendarMoment
	Gender      Gender
	Summary     string
	Payload     []byte
	GeneratedAt time.Time
}

// ChartEvent is published after a chart has been computed.
type ChartEvent struct {
	ID          string         `json:"id"`
	Kind        string         `json:"kind"`
	Moment      CalendarMoment `json:"moment"`
	Gender      Gender         `json:"gender"`
	Summary     string         `json:"summary"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Chart kinds.
const (
	KindBaZi  = "bazi"
	KindZiWei = "ziwei"
)
