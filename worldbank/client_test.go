package worldbank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(zerolog.Nop()).WithBaseURL(server.URL)
}

func TestIndicatorFetchesSeries(t *testing.T) {
	var gotPath, gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		// Newest first, with one null year, as the live API does.
		w.Write([]byte(`[
			{"page":1,"pages":1,"per_page":1000,"total":4},
			[
				{"date":"2023","value":3.55e12},
				{"date":"2022","value":null},
				{"date":"2021","value":3.15e12},
				{"date":"2020","value":2.67e12}
			]
		]`))
	})

	series, err := client.Indicator(context.Background(), "IN", GDPCurrentUSD, 2020, 2023)
	require.NoError(t, err)

	assert.Contains(t, gotPath, "/country/IN/indicator/NY.GDP.MKTP.CD")
	assert.Contains(t, gotQuery, "date=2020%3A2023")

	require.Equal(t, 3, series.Len())
	assert.Equal(t, []int{2020, 2021, 2023}, series.Years())
	assert.Equal(t, 2.67e12, series.Values[0])
	assert.Equal(t, 3.55e12, series.Values[2])
	assert.Equal(t, "IN NY.GDP.MKTP.CD", series.Name)
}

func TestIndicatorAPIErrorMessage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"message":[{"id":"120","key":"Invalid value","value":"The provided parameter value is not valid"}]}]`))
	})

	_, err := client.Indicator(context.Background(), "XX", GDPCurrentUSD, 2000, 2020)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "The provided parameter value is not valid")
}

func TestIndicatorHTTPError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Indicator(context.Background(), "IN", GDPCurrentUSD, 2000, 2020)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestIndicatorAllNull(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"page":1,"pages":1,"total":2},[{"date":"2001","value":null},{"date":"2000","value":null}]]`))
	})

	_, err := client.Indicator(context.Background(), "IN", GDPCurrentUSD, 2000, 2001)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")
}

func TestIndicatorValidation(t *testing.T) {
	client := NewClient(zerolog.Nop())

	_, err := client.Indicator(context.Background(), "", GDPCurrentUSD, 2000, 2020)
	assert.Error(t, err)

	_, err = client.Indicator(context.Background(), "IN", GDPCurrentUSD, 2020, 2000)
	assert.Error(t, err)
}

func TestIndicatorContextCancelled(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Indicator(ctx, "IN", GDPCurrentUSD, 2000, 2020)
	require.Error(t, err)
}
