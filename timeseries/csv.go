package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	YearColumn  string // Column name for the observation year (default: "year")
	ValueColumn string // Column name for values (default: "value")
	HasHeader   bool   // Whether CSV has a header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	Name        string // Name assigned to the loaded series
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		YearColumn:  "year",
		ValueColumn: "value",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads an annual time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads an annual time series from an io.Reader.
// Rows with empty, "NA" or unparseable values are skipped.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	yearIdx, valueIdx := 0, 1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		yearIdx, valueIdx = -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case strings.EqualFold(h, opts.YearColumn):
				yearIdx = i
			case strings.EqualFold(h, opts.ValueColumn):
				valueIdx = i
			}
		}
		if yearIdx == -1 || valueIdx == -1 {
			return nil, fmt.Errorf("columns %q and %q not found in header", opts.YearColumn, opts.ValueColumn)
		}
	}

	var timestamps []time.Time
	var values []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if yearIdx >= len(record) || valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue
		}

		yearStr := strings.TrimSpace(strings.Trim(record[yearIdx], "\""))
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			continue
		}

		timestamps = append(timestamps, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	series, err := NewWithTimestamps(timestamps, values)
	if err != nil {
		return nil, fmt.Errorf("invalid CSV ordering: %w", err)
	}
	series.Name = opts.Name
	return series, nil
}

// SaveCSV saves an annual time series to a CSV file as year,value rows.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"year", "value"}); err != nil {
		return err
	}
	years := series.Years()
	for i, v := range series.Values {
		row := []string{
			strconv.Itoa(years[i]),
			strconv.FormatFloat(v, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	// Writes are buffered; a full disk only surfaces at flush time.
	writer.Flush()
	return writer.Error()
}
