package lunar

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/csg8/suanmingapp/internal/domain/models"
	domsvc "github.com/csg8/suanmingapp/internal/domain/service"
	xhttp "github.com/csg8/suanmingapp/pkg/http"
)

// HTTPConverter delegates conversion to a remote lunar calendar service.
// It accepts either a bare object or one wrapped in a "data" envelope:
//
//	{"year":1999,"month":11,"day":25,"hour":0,"leap":false,"label":"..."}
type HTTPConverter struct {
	baseURL string
	client  *xhttp.Client
}

func NewHTTPConverter(baseURL string, timeout time.Duration) *HTTPConverter {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPConverter{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

func (c *HTTPConverter) Name() string { return ProviderHTTP }

func (c *HTTPConverter) ToLunar(ctx context.Context, m models.CalendarMoment) (models.LunarDate, error) {
	if c.baseURL == "" {
		return models.LunarDate{}, fmt.Errorf("%w: lunar service url not configured", models.ErrLunarUnavailable)
	}
	var body []byte
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/lunar",
		QueryParams: map[string][]string{
			"year":  {strconv.Itoa(m.Year)},
			"month": {strconv.Itoa(m.Month)},
			"day":   {strconv.Itoa(m.Day)},
			"hour":  {strconv.Itoa(m.Hour)},
		},
	}, &body)
	if err != nil {
		return models.LunarDate{}, fmt.Errorf("%w: %v", models.ErrLunarUnavailable, err)
	}
	return parseLunarBody(body)
}

func parseLunarBody(body []byte) (models.LunarDate, error) {
	if !gjson.ValidBytes(body) {
		return models.LunarDate{}, fmt.Errorf("%w: malformed response", models.ErrLunarUnavailable)
	}
	root := gjson.ParseBytes(body)
	if data := root.Get("data"); data.IsObject() {
		root = data
	}
	for _, field := range []string{"year", "month", "day", "hour"} {
		if !root.Get(field).Exists() {
			return models.LunarDate{}, fmt.Errorf("%w: response missing %q", models.ErrLunarUnavailable, field)
		}
	}
	return models.LunarDate{
		Year:  int(root.Get("year").Int()),
		Month: int(root.Get("month").Int()),
		Day:   int(root.Get("day").Int()),
		Hour:  int(root.Get("hour").Int()),
		Leap:  root.Get("leap").Bool(),
		Label: root.Get("label").String(),
	}, nil
}

var _ domsvc.LunarConverter = (*HTTPConverter)(nil)
