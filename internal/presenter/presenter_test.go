package presenter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/csg8/suanmingapp/internal/domain/models"
	"github.com/csg8/suanmingapp/internal/services/bazi"
	"github.com/csg8/suanmingapp/internal/services/ziwei"
)

func keysOf(t *testing.T, raw []byte, path string) []string {
	t.Helper()
	res := gjson.GetBytes(raw, path)
	require.True(t, res.IsObject(), "%s is not an object", path)
	var keys []string
	res.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap()
	m.Set("z", 1)
	m.Set("a", []int{1, 2})
	m.Set("命宫", "x")
	m.Set("z", 3)

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":3,"a":[1,2],"命宫":"x"}`, string(raw))
	assert.Equal(t, []string{"z", "a", "命宫"}, keysOf(t, raw, "@this"))
	assert.Equal(t, 3, m.Len())
}

func TestOrderedMapEscapesPathSyntax(t *testing.T) {
	m := NewOrderedMap()
	for _, k := range []string{"a.b", "c*", "d?e", "1", ":x", `back\slash`, "p|q", "#"} {
		m.Set(k, k)
	}

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Len(t, decoded, 8)
	for k, v := range decoded {
		assert.Equal(t, k, v)
	}
	assert.Equal(t, m.Keys(), keysOf(t, raw, "@this"))
}

func TestOrderedMapNilAndEmpty(t *testing.T) {
	var m *OrderedMap
	raw, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))

	raw, err = json.Marshal(NewOrderedMap())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

var y2k = models.CalendarMoment{Year: 2000, Month: 1, Day: 1, Hour: 0}

func TestZiWeiView(t *testing.T) {
	lunar := models.LunarDate{Year: 1999, Month: 11, Day: 25, Hour: 0, Label: "己卯年冬月廿五"}
	chart := ziwei.Build(lunar, models.Male)

	raw, err := json.Marshal(ZiWei(chart, y2k))
	require.NoError(t, err)

	// month 11, hour bucket 0 → palace 10.
	assert.Equal(t, "福德", gjson.GetBytes(raw, "ming_gong").String())
	assert.Equal(t, "戌", gjson.GetBytes(raw, "ming_gong_branch").String())

	var starOrder []string
	for _, s := range models.Stars() {
		starOrder = append(starOrder, s.String())
	}
	assert.Equal(t, starOrder, keysOf(t, raw, "main_stars"))
	assert.Equal(t, "福德", gjson.GetBytes(raw, "main_stars.紫微").String())

	var palaceOrder []string
	for _, p := range models.Palaces() {
		palaceOrder = append(palaceOrder, p.String())
	}
	assert.Equal(t, palaceOrder, keysOf(t, raw, "predictions"))

	assert.Equal(t, int64(12), gjson.GetBytes(raw, "palaces.#").Int())
	assert.Equal(t, "子", gjson.GetBytes(raw, "palaces.0.branch").String())

	assert.Equal(t, int64(1999), gjson.GetBytes(raw, "birth_info.year").Int())
	assert.Equal(t, int64(11), gjson.GetBytes(raw, "birth_info.month").Int())
	assert.Equal(t, "男", gjson.GetBytes(raw, "birth_info.gender").String())
	assert.Equal(t, int64(2000), gjson.GetBytes(raw, "solar.year").Int())
	assert.Equal(t, "己卯年冬月廿五", gjson.GetBytes(raw, "lunar.label").String())
}

func TestZiWeiViewIdentityPredictions(t *testing.T) {
	chart := ziwei.Build(models.LunarDate{Year: 2000, Month: 1, Day: 1, Hour: 0}, models.Male)
	v := ZiWei(chart, y2k)

	text, ok := v.Predictions.Get("命宫")
	require.True(t, ok)
	assert.Equal(t, "平 - 主性格、个性、人生走向\n落星：紫微、七杀", text)

	assert.Equal(t, "命宫", v.MingGong)
	assert.Equal(t, []string{"紫微", "七杀"}, v.Palaces[0].Stars)
	assert.Equal(t, "平", v.Palaces[0].Verdict)
	assert.Equal(t, "吉", v.Palaces[2].Verdict)
}

func TestBaZiView(t *testing.T) {
	r := bazi.Read(y2k, models.Female, models.LunarDate{Year: 1999, Month: 11, Day: 25})
	raw, err := json.Marshal(BaZi(r))
	require.NoError(t, err)

	assert.Equal(t, []string{"year", "month", "day", "hour"}, keysOf(t, raw, "pillars"))
	assert.Equal(t, "庚辰", gjson.GetBytes(raw, "pillars.year").String())
	assert.Equal(t, "甲子", gjson.GetBytes(raw, "pillars.hour").String())

	assert.Equal(t, []string{"木", "火", "土", "金", "水"}, keysOf(t, raw, "five_elements"))
	assert.Equal(t, int64(3), gjson.GetBytes(raw, "five_elements.木").Int())
	assert.Equal(t, int64(0), gjson.GetBytes(raw, "five_elements.火").Int())
	assert.Equal(t, "木", gjson.GetBytes(raw, "dominant_element").String())
	assert.Equal(t, `["火","土","水"]`, gjson.GetBytes(raw, "missing_elements").Raw)

	assert.Equal(t, "龙", gjson.GetBytes(raw, "zodiac").String())
	assert.Equal(t, int64(2000), gjson.GetBytes(raw, "birth_info.year").Int())
	assert.Equal(t, "女", gjson.GetBytes(raw, "birth_info.gender").String())
	assert.Equal(t, int64(1999), gjson.GetBytes(raw, "lunar.year").Int())
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	assert.Len(t, c.Stems, models.NumStems)
	assert.Len(t, c.Branches, models.NumBranches)
	assert.Len(t, c.Palaces, models.NumPalaces)
	assert.Len(t, c.Stars, models.NumStars)
	assert.Equal(t, "大吉", c.Verdicts[0].Name)

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `["甲","乙"]`, gjson.GetBytes(raw, "elements.木").Raw)
	assert.Equal(t, `["壬","癸"]`, gjson.GetBytes(raw, "elements.水").Raw)
	assert.Equal(t, "中", gjson.GetBytes(raw, "stars.9.quality").String())

	c.Stems[0] = "x"
	assert.Equal(t, "甲", models.Stems[0])
}
