package interestrate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "https://www.ustreasuryyieldcurve.com/api/v1/yield_curve_snapshot"

// the curve is not published on weekends and holidays
const maxLookbackDays = 10

// RiskFreeTenorMonths is the bill used as the risk-free rate.
const RiskFreeTenorMonths = 3

var tenorKeys = []string{
	"yield_1m",
	"yield_2m",
	"yield_3m",
	"yield_4m",
	"yield_6m",
	"yield_1y",
	"yield_2y",
	"yield_3y",
	"yield_5y",
	"yield_7y",
	"yield_10y",
	"yield_20y",
	"yield_30y",
}

// tenorMonths turns an api key like yield_10y into 120.
func tenorMonths(in string) (int, error) {
	cleanedStr := strings.TrimPrefix(in, "yield_")
	if len(cleanedStr) < 2 {
		return 0, fmt.Errorf("unrecognized tenor %s", in)
	}
	unit := cleanedStr[len(cleanedStr)-1]
	months, err := strconv.Atoi(cleanedStr[:len(cleanedStr)-1])
	if err != nil {
		return 0, fmt.Errorf("unrecognized tenor %s: %w", in, err)
	}

	switch unit {
	case 'm':
		return months, nil
	case 'y':
		return months * 12, nil
	}
	return 0, fmt.Errorf("unrecognized tenor %s", in)
}

// YieldCurve holds annualised treasury yields as decimals, keyed by months
// to maturity.
type YieldCurve struct {
	Date  time.Time
	Rates map[int]float64
}

// Rate interpolates linearly between the nearest published tenors and
// clamps outside the published range.
func (yc YieldCurve) Rate(monthsOut int) (float64, error) {
	if len(yc.Rates) == 0 {
		return 0, fmt.Errorf("empty yield curve for %s", yc.Date.Format(time.DateOnly))
	}
	if v, ok := yc.Rates[monthsOut]; ok {
		return v, nil
	}

	keys := make([]int, 0, len(yc.Rates))
	for k := range yc.Rates {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if monthsOut < keys[0] {
		return yc.Rates[keys[0]], nil
	}
	if monthsOut > keys[len(keys)-1] {
		return yc.Rates[keys[len(keys)-1]], nil
	}

	i := sort.SearchInts(keys, monthsOut)
	lo, hi := keys[i-1], keys[i]
	w := float64(monthsOut-lo) / float64(hi-lo)
	return yc.Rates[lo] + w*(yc.Rates[hi]-yc.Rates[lo]), nil
}

type Client struct {
	BaseURL    string
	HttpClient *http.Client

	mu    sync.Mutex
	cache map[string]*YieldCurve
}

func NewClient() *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		HttpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      map[string]*YieldCurve{},
	}
}

// GetYieldCurve returns the curve published on date, or the most recent
// one before it.
func (c *Client) GetYieldCurve(ctx context.Context, date time.Time) (*YieldCurve, error) {
	for i := 0; i <= maxLookbackDays; i++ {
		day := date.AddDate(0, 0, -i)
		curve, err := c.getDay(ctx, day)
		if err != nil {
			return nil, err
		}
		if len(curve.Rates) > 0 {
			return curve, nil
		}
	}
	return nil, fmt.Errorf("no yield curve published in the %d days before %s", maxLookbackDays, date.Format(time.DateOnly))
}

// RiskFreeRate is the 3 month bill yield as of asOf.
func (c *Client) RiskFreeRate(ctx context.Context, asOf time.Time) (float64, error) {
	curve, err := c.GetYieldCurve(ctx, asOf)
	if err != nil {
		return 0, err
	}
	return curve.Rate(RiskFreeTenorMonths)
}

func (c *Client) getDay(ctx context.Context, date time.Time) (*YieldCurve, error) {
	tStr := date.Format(time.DateOnly)

	c.mu.Lock()
	if c.cache == nil {
		c.cache = map[string]*YieldCurve{}
	}
	cached, ok := c.cache[tStr]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	url := fmt.Sprintf("%s?date=%s&offset=0", c.BaseURL, tStr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := c.HttpClient
	if client == nil {
		client = http.DefaultClient
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch yield curve for %s: %w", tStr, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	curve, err := parseCurve(date, responseBytes)
	if err != nil {
		return nil, err
	}

	// an empty curve may still be published later in the day
	if len(curve.Rates) > 0 {
		c.mu.Lock()
		c.cache[tStr] = curve
		c.mu.Unlock()
	}

	return curve, nil
}

func parseCurve(date time.Time, body []byte) (*YieldCurve, error) {
	responseBody := []map[string]interface{}{}
	if err := json.Unmarshal(body, &responseBody); err != nil {
		return nil, fmt.Errorf("failed to parse yield curve: %w", err)
	}

	out := map[int]float64{}
	for _, snapshot := range responseBody {
		for _, key := range tenorKeys {
			v, ok := snapshot[key].(float64)
			if !ok {
				continue
			}
			months, err := tenorMonths(key)
			if err != nil {
				return nil, err
			}
			out[months] = v / 100
		}
	}

	return &YieldCurve{
		Date:  date,
		Rates: out,
	}, nil
}
