// Package worldbank fetches annual indicator series from the World Bank API.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
)

// GDPCurrentUSD is the World Bank indicator code for GDP in current US dollars.
const GDPCurrentUSD = "NY.GDP.MKTP.CD"

const defaultBaseURL = "https://api.worldbank.org/v2"

// Client for the World Bank v2 indicator API.
type Client struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a World Bank API client.
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log.With().Str("client", "worldbank").Logger(),
	}
}

// WithBaseURL overrides the API endpoint. Used for tests and mirrors.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

// observation is one data point in the API response. Value is a pointer
// because the API reports missing years as JSON null.
type observation struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// apiMessage is the error shape the API returns inside the metadata object.
type apiMessage struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type metadata struct {
	Page    int          `json:"page"`
	Pages   int          `json:"pages"`
	PerPage any          `json:"per_page"`
	Total   int          `json:"total"`
	Message []apiMessage `json:"message"`
}

// Indicator fetches the annual series for one indicator and country over
// [startYear, endYear]. Years the API reports as null are dropped; the
// returned series is in chronological order. country is an ISO code such
// as "IN" or "IND".
func (c *Client) Indicator(ctx context.Context, country, indicator string, startYear, endYear int) (*timeseries.Series, error) {
	if country == "" || indicator == "" {
		return nil, fmt.Errorf("country and indicator are required")
	}
	if startYear > endYear {
		return nil, fmt.Errorf("invalid year range %d:%d", startYear, endYear)
	}

	endpoint := fmt.Sprintf("%s/country/%s/indicator/%s", c.baseURL,
		url.PathEscape(country), url.PathEscape(indicator))

	query := url.Values{}
	query.Set("format", "json")
	query.Set("date", fmt.Sprintf("%d:%d", startYear, endYear))
	query.Set("per_page", "1000")

	reqURL := endpoint + "?" + query.Encode()
	c.log.Debug().Str("url", reqURL).Msg("Fetching indicator")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	// The response is a two-element array: metadata, then the data points.
	var envelope []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(envelope) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	var meta metadata
	if err := json.Unmarshal(envelope[0], &meta); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	if len(meta.Message) > 0 {
		return nil, fmt.Errorf("API error: %s (%s)", meta.Message[0].Value, meta.Message[0].ID)
	}
	if len(envelope) < 2 {
		return nil, fmt.Errorf("response missing data element")
	}

	var points []observation
	if err := json.Unmarshal(envelope[1], &points); err != nil {
		return nil, fmt.Errorf("failed to parse data points: %w", err)
	}

	type yearValue struct {
		year  int
		value float64
	}
	kept := make([]yearValue, 0, len(points))
	skipped := 0
	for _, p := range points {
		if p.Value == nil {
			skipped++
			continue
		}
		var year int
		if _, err := fmt.Sscanf(p.Date, "%d", &year); err != nil {
			skipped++
			continue
		}
		kept = append(kept, yearValue{year: year, value: *p.Value})
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no data for %s/%s in %d:%d", country, indicator, startYear, endYear)
	}

	// The API returns newest first.
	sort.Slice(kept, func(i, j int) bool { return kept[i].year < kept[j].year })

	timestamps := make([]time.Time, len(kept))
	values := make([]float64, len(kept))
	for i, yv := range kept {
		timestamps[i] = time.Date(yv.year, time.January, 1, 0, 0, 0, 0, time.UTC)
		values[i] = yv.value
	}

	series, err := timeseries.NewWithTimestamps(timestamps, values)
	if err != nil {
		return nil, fmt.Errorf("building series: %w", err)
	}
	series.Name = fmt.Sprintf("%s %s", country, indicator)

	c.log.Info().
		Str("country", country).
		Str("indicator", indicator).
		Int("observations", len(values)).
		Int("skipped", skipped).
		Msg("Fetched indicator series")

	return series, nil
}
