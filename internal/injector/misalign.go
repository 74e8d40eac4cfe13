package injector

import (
	"fmt"
	"time"

	"github.com/Rana718/mockdb/internal/table"
)

type misalignConfig struct {
	openField     string
	modifiedField string
	window        bool
}

type MisalignOption func(*misalignConfig)

// WithOpenField names the column holding the record's opening date.
func WithOpenField(name string) MisalignOption {
	return func(c *misalignConfig) { c.openField = name }
}

// WithModifiedField names the column holding the record's last modified date.
func WithModifiedField(name string) MisalignOption {
	return func(c *misalignConfig) { c.modifiedField = name }
}

// WithinOpenModifiedWindow controls whether rows carrying both dates draw the closed date
// between them. It defaults to true.
func WithinOpenModifiedWindow(enabled bool) MisalignOption {
	return func(c *misalignConfig) { c.window = enabled }
}

// MisalignClosedDate overwrites closedField on rowPct% of all rows with a date drawn
// from a window that ends at or before the record's open or modified date, so the closed
// date no longer trails the record's history. An unset percentage defaults to a fresh
// draw from 10-20.
func (inj *Injector) MisalignClosedDate(t *table.Table, closedField string, rowPct Percent, opts ...MisalignOption) (*table.Table, error) {
	cfg := misalignConfig{window: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	closed, err := t.Values(closedField)
	if err != nil {
		return nil, err
	}
	var open, modified []any
	if cfg.openField != "" {
		if open, err = t.Values(cfg.openField); err != nil {
			return nil, fmt.Errorf("open date field: %w", err)
		}
	}
	if cfg.modifiedField != "" {
		if modified, err = t.Values(cfg.modifiedField); err != nil {
			return nil, fmt.Errorf("modified date field: %w", err)
		}
	}
	p, err := inj.resolve("row coverage percentage", rowPct, 10, 20)
	if err != nil {
		return nil, err
	}

	today := inj.today()
	floor := earliest(today, open, modified)

	rows := inj.choose(allRows(len(closed)), p)
	updates := make(map[int]time.Time, len(rows))
	for _, row := range rows {
		start, end := cfg.interval(row, open, modified, floor, today)
		date, err := inj.rng.Date(start, end)
		if err != nil {
			return nil, fmt.Errorf("misalign %q row %d: %w", closedField, row, err)
		}
		updates[row] = date
	}
	for row, date := range updates {
		closed[row] = date
	}

	inj.logApplied("misalign_closed_date", t, closedField, p, len(closed), len(rows))
	return t, nil
}

// interval picks the [start, end] window for one row. The start is the earliest date seen
// in the open and modified columns unless the window option applies. A start that is not
// before end is pushed back to ten days before end.
func (c misalignConfig) interval(row int, open, modified []any, floor, today time.Time) (time.Time, time.Time) {
	var openDate, modDate time.Time
	var hasOpen, hasMod bool
	if open != nil {
		openDate, hasOpen = dateAt(open, row)
	}
	if modified != nil {
		modDate, hasMod = dateAt(modified, row)
	}

	start, end := floor, today
	switch {
	case open != nil && modified != nil:
		switch {
		case hasOpen && hasMod && c.window:
			start, end = openDate, modDate
		case hasMod:
			end = modDate
		case hasOpen:
			end = openDate
		}
	case open != nil:
		if hasOpen {
			end = openDate
		}
	case modified != nil:
		if hasMod {
			end = modDate
		}
	}

	if !start.Before(end) {
		start = end.AddDate(0, 0, -10)
	}
	return start, end
}

func dateAt(values []any, row int) (time.Time, bool) {
	d, ok := table.AsTime(values[row])
	if !ok {
		return time.Time{}, false
	}
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), true
}

// earliest is the minimum populated date across columns, or fallback when there is none.
func earliest(fallback time.Time, columns ...[]any) time.Time {
	var min time.Time
	found := false
	for _, values := range columns {
		for row := range values {
			d, ok := dateAt(values, row)
			if !ok {
				continue
			}
			if !found || d.Before(min) {
				min = d
				found = true
			}
		}
	}
	if !found {
		return fallback
	}
	return min
}
