// Package integrity reports data-quality findings for a single table. Checks never
// modify the table and never fail on bad data; they return a Result describing it.
package integrity

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Rana718/mockdb/internal/table"
)

// Statuses counted as active or closed by ActiveIDs, compared case-insensitively.
var (
	ActiveStatuses = []string{"ACTIVE", "A", "EMPLOYEED", "E"}
	ClosedStatuses = []string{"CLOSED", "C", "INACTIVE", "I", "TERMINATED", "T"}
)

const DefaultNullThreshold = 100

// Result is the outcome of one check.
type Result struct {
	Check    string             `json:"check" yaml:"check"`
	Column   string             `json:"column,omitempty" yaml:"column,omitempty"`
	Passed   bool               `json:"passed" yaml:"passed"`
	Warnings []string           `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Counts   map[string]int     `json:"counts,omitempty" yaml:"counts,omitempty"`
	Ratios   map[string]float64 `json:"ratios,omitempty" yaml:"ratios,omitempty"`
	Invalid  []string           `json:"invalid,omitempty" yaml:"invalid,omitempty"`
	Rows     []int              `json:"rows,omitempty" yaml:"rows,omitempty"`
}

func newResult(check, column string) *Result {
	return &Result{
		Check:  check,
		Column: column,
		Counts: make(map[string]int),
	}
}

func (r *Result) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) done() *Result {
	r.Passed = len(r.Warnings) == 0
	if len(r.Counts) == 0 {
		r.Counts = nil
	}
	return r
}

type Checker struct {
	t *table.Table
}

func New(t *table.Table) *Checker {
	return &Checker{t: t}
}

func (c *Checker) values(column string) ([]any, error) {
	v, err := c.t.Values(column)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", c.t.Name, err)
	}
	return v, nil
}

// Thresholds bound the row count and the distinct id count, both inclusive.
type Thresholds struct {
	MinIDs  int
	MaxIDs  int
	MinRows int
	MaxRows int
}

func DefaultThresholds() Thresholds {
	return Thresholds{MinIDs: 10, MaxIDs: 500000, MinRows: 10, MaxRows: 500000}
}

// IDThresholds checks the row count and the distinct count of idColumn.
func (c *Checker) IDThresholds(idColumn string, th Thresholds) (*Result, error) {
	ids, err := c.values(idColumn)
	if err != nil {
		return nil, err
	}

	distinct := make(map[string]struct{}, len(ids))
	for _, v := range ids {
		distinct[table.Key(v)] = struct{}{}
	}

	r := newResult("id_thresholds", idColumn)
	r.Counts["distinct_ids"] = len(distinct)
	r.Counts["rows"] = len(ids)

	if len(distinct) < th.MinIDs {
		r.warn("distinct ID count %d is below minimum threshold (%d)", len(distinct), th.MinIDs)
	}
	if len(distinct) > th.MaxIDs {
		r.warn("distinct ID count %d is above maximum threshold (%d)", len(distinct), th.MaxIDs)
	}
	if len(ids) > th.MaxRows {
		r.warn("record count %d is above maximum threshold (%d)", len(ids), th.MaxRows)
	}
	if len(ids) < th.MinRows {
		r.warn("record count %d is below minimum threshold (%d)", len(ids), th.MinRows)
	}
	return r.done(), nil
}

// ActiveThresholds bound the active and closed populations of a status column.
type ActiveThresholds struct {
	MinActive   int
	MaxClosed   int
	ActiveRatio float64 // minimum active/total
	ClosedRatio float64 // minimum closed/total
}

func DefaultActiveThresholds() ActiveThresholds {
	return ActiveThresholds{MinActive: 10, MaxClosed: 500000, ActiveRatio: 0.5, ClosedRatio: 0.1}
}

// ActiveIDs counts rows whose status is one of ActiveStatuses or ClosedStatuses and
// checks both counts and their share of all rows.
func (c *Checker) ActiveIDs(idColumn, statusColumn string, th ActiveThresholds) (*Result, error) {
	if _, err := c.values(idColumn); err != nil {
		return nil, err
	}
	statuses, err := c.values(statusColumn)
	if err != nil {
		return nil, err
	}

	var active, closed int
	for _, v := range statuses {
		s := strings.ToUpper(strings.TrimSpace(table.Format(v)))
		switch {
		case contains(ActiveStatuses, s):
			active++
		case contains(ClosedStatuses, s):
			closed++
		}
	}

	var activeRatio, closedRatio float64
	if total := len(statuses); total > 0 {
		activeRatio = float64(active) / float64(total)
		closedRatio = float64(closed) / float64(total)
	}

	r := newResult("active_ids", statusColumn)
	r.Counts["active"] = active
	r.Counts["closed"] = closed
	r.Counts["rows"] = len(statuses)
	r.Ratios = map[string]float64{"active": activeRatio, "closed": closedRatio}

	if active < th.MinActive {
		r.warn("active IDs %d below minimum threshold (%d)", active, th.MinActive)
	}
	if closed > th.MaxClosed {
		r.warn("closed IDs %d above maximum threshold (%d)", closed, th.MaxClosed)
	}
	if active == 0 {
		r.warn("zero active type values were present")
	} else if activeRatio < th.ActiveRatio {
		r.warn("ratio of active to total IDs (%.2f) is below threshold (%g)", activeRatio, th.ActiveRatio)
	}
	if closed == 0 {
		r.warn("zero closure type values were present")
	} else if closedRatio < th.ClosedRatio {
		r.warn("ratio of closed to total IDs (%.2f) is below threshold (%g)", closedRatio, th.ClosedRatio)
	}
	return r.done(), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Nulls flags columns that are entirely null and columns with more than threshold nulls.
// Invalid lists the entirely null columns.
func (c *Checker) Nulls(threshold int) *Result {
	r := newResult("nulls", "")
	for _, name := range c.t.Columns() {
		values, _ := c.t.Values(name)
		count := 0
		for _, v := range values {
			if table.IsNull(v) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		r.Counts[name] = count
		if count == len(values) {
			r.Invalid = append(r.Invalid, name)
			r.warn("field %q is entirely null", name)
			continue
		}
		if count > threshold {
			r.warn("field %q has a null count of %d, exceeding threshold %d", name, count, threshold)
		}
	}
	return r.done()
}

// DuplicateRows reports every row that repeats an earlier row exactly.
func (c *Checker) DuplicateRows() *Result {
	r := newResult("duplicate_rows", "")
	seen := make(map[string]bool, c.t.Len())
	for i := 0; i < c.t.Len(); i++ {
		key := table.RowKey(c.t.Row(i))
		if seen[key] {
			r.Rows = append(r.Rows, i)
			continue
		}
		seen[key] = true
	}
	if len(r.Rows) > 0 {
		r.Counts["duplicates"] = len(r.Rows)
		r.warn("%d duplicate rows found", len(r.Rows))
	}
	return r.done()
}

func kindsOf(values []any) []string {
	set := make(map[table.Kind]struct{})
	for _, v := range values {
		if !table.IsNull(v) {
			set[table.KindOf(v)] = struct{}{}
		}
	}
	kinds := make([]string, 0, len(set))
	for k := range set {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return kinds
}

// MultipleTypes flags columns whose non-null values are of more than one kind.
func (c *Checker) MultipleTypes() *Result {
	r := newResult("multiple_types", "")
	for _, name := range c.t.Columns() {
		values, _ := c.t.Values(name)
		if kinds := kindsOf(values); len(kinds) > 1 {
			r.Invalid = append(r.Invalid, name)
			r.warn("column %q has multiple data types %s", name, strings.Join(kinds, ", "))
		}
	}
	return r.done()
}

// ExplicitTypes flags columns holding any non-null value that is not of the expected kind.
func (c *Checker) ExplicitTypes(expected map[string]table.Kind) (*Result, error) {
	names := make([]string, 0, len(expected))
	for name := range expected {
		names = append(names, name)
	}
	sort.Strings(names)

	r := newResult("explicit_types", "")
	for _, name := range names {
		values, err := c.values(name)
		if err != nil {
			return nil, err
		}
		want := expected[name]
		for _, v := range values {
			if !table.IsNull(v) && table.KindOf(v) != want {
				r.Invalid = append(r.Invalid, name)
				r.warn("data type issue in column %q: expected %s, has %s", name, want, strings.Join(kindsOf(values), ", "))
				break
			}
		}
	}
	return r.done(), nil
}

// LengthRange checks that every value of column, as text, is between min and max
// characters long. Null counts as empty text.
func (c *Checker) LengthRange(column string, min, max int) (*Result, error) {
	values, err := c.values(column)
	if err != nil {
		return nil, err
	}

	r := newResult("length_range", column)
	shortest, longest := -1, 0
	outside := 0
	for _, v := range values {
		n := utf8.RuneCountInString(table.Format(v))
		if shortest < 0 || n < shortest {
			shortest = n
		}
		if n > longest {
			longest = n
		}
		if n < min || n > max {
			outside++
		}
	}
	if shortest < 0 {
		shortest = 0
	}
	r.Counts["min_length"] = shortest
	r.Counts["max_length"] = longest
	if outside > 0 {
		r.Counts["outside"] = outside
		r.warn("field %q has %d values outside the length range [%d, %d]", column, outside, min, max)
	}
	return r.done(), nil
}
