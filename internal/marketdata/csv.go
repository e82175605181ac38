package marketdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
)

// timeLayouts are accepted timestamp formats, most specific first.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CSVDir serves price series from a directory of SYMBOL.csv files with a
// timestamp,open,high,low,close,volume header. Files are read on every
// request; the provider holds no cache.
type CSVDir struct {
	dir string
}

// NewCSVDir creates a provider over the given directory.
func NewCSVDir(dir string) *CSVDir {
	return &CSVDir{dir: dir}
}

// Symbols lists the symbols with a data file, sorted and upper-cased.
func (c *CSVDir) Symbols() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("reading data dir: %w", err)
	}

	var symbols []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		symbols = append(symbols, strings.ToUpper(strings.TrimSuffix(e.Name(), ".csv")))
	}
	sort.Strings(symbols)
	return symbols, nil
}

// History loads and validates the series for a symbol, sliced to
// [start, end].
func (c *CSVDir) History(symbol string, start, end time.Time) ([]core.Bar, error) {
	path := filepath.Join(c.dir, strings.ToUpper(symbol)+".csv")
	series, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Slice(series, start, end), nil
}

// LoadFile reads a CSV bar file and validates the resulting series.
func LoadFile(path string) ([]core.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, core.WrapError(core.ErrInvalidSeries, fmt.Errorf("parsing %s: %w", path, err))
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols, err := headerIndex(records[0])
	if err != nil {
		return nil, core.WrapError(core.ErrInvalidSeries, fmt.Errorf("%s: %w", path, err))
	}

	series := make([]core.Bar, 0, len(records)-1)
	for i, record := range records[1:] {
		bar, err := parseBar(record, cols)
		if err != nil {
			return nil, core.WrapError(core.ErrInvalidSeries,
				fmt.Errorf("%s row %d: %w", path, i+2, err))
		}
		series = append(series, bar)
	}

	if err := core.ValidateSeries(series); err != nil {
		return nil, err
	}
	return series, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"timestamp", "open", "high", "low", "close", "volume"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	return cols, nil
}

func parseBar(record []string, cols map[string]int) (core.Bar, error) {
	field := func(name string) (string, error) {
		idx := cols[name]
		if idx >= len(record) {
			return "", fmt.Errorf("missing field %q", name)
		}
		return strings.TrimSpace(record[idx]), nil
	}

	var bar core.Bar

	ts, err := field("timestamp")
	if err != nil {
		return bar, err
	}
	bar.Time, err = parseTime(ts)
	if err != nil {
		return bar, err
	}

	for name, dst := range map[string]*float64{
		"open":   &bar.Open,
		"high":   &bar.High,
		"low":    &bar.Low,
		"close":  &bar.Close,
		"volume": &bar.Volume,
	} {
		raw, err := field(name)
		if err != nil {
			return bar, err
		}
		*dst, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return bar, fmt.Errorf("parsing %s: %w", name, err)
		}
	}

	return bar, nil
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
