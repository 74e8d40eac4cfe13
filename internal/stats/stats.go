// Package stats summarizes the values of a table.
package stats

import (
	"fmt"
	"sort"

	"github.com/Rana718/mockdb/internal/table"
	"github.com/montanaflynn/stats"
)

// ValueCount is one distinct value and how often it occurs.
type ValueCount struct {
	Value any `json:"value" yaml:"value"`
	Count int `json:"count" yaml:"count"`
}

// Summary holds the numeric summary of a column. It is nil for non-numeric columns.
type Summary struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	Min    float64 `json:"min" yaml:"min"`
	Q1     float64 `json:"q1" yaml:"q1"`
	Median float64 `json:"median" yaml:"median"`
	Q3     float64 `json:"q3" yaml:"q3"`
	Max    float64 `json:"max" yaml:"max"`
}

// ColumnInfo describes one column.
type ColumnInfo struct {
	Name    string   `json:"name" yaml:"name"`
	Kind    string   `json:"kind" yaml:"kind"`
	NonNull int      `json:"non_null" yaml:"non_null"`
	Nulls   int      `json:"nulls" yaml:"nulls"`
	Unique  int      `json:"unique" yaml:"unique"`
	Numeric *Summary `json:"numeric,omitempty" yaml:"numeric,omitempty"`
}

// Statistics reads a single table.
type Statistics struct {
	t *table.Table
}

func New(t *table.Table) *Statistics {
	return &Statistics{t: t}
}

func (s *Statistics) values(column string) ([]any, error) {
	v, err := s.t.Values(column)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", s.t.Name, err)
	}
	return v, nil
}

// UniqueValues returns the distinct values of column in first-appearance order. Null
// is included when present.
func (s *Statistics) UniqueValues(column string) ([]any, error) {
	values, err := s.values(column)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []any
	for _, v := range values {
		key := table.Key(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out, nil
}

// CountListed counts how often each of wanted occurs in column, comparing as text.
// Every wanted value gets an entry, zero included.
func (s *Statistics) CountListed(wanted []string, column string) (map[string]int, error) {
	values, err := s.values(column)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(wanted))
	for _, w := range wanted {
		counts[w] = 0
	}
	for _, v := range values {
		if table.IsNull(v) {
			continue
		}
		if _, ok := counts[table.Format(v)]; ok {
			counts[table.Format(v)]++
		}
	}
	return counts, nil
}

// ValueCounts returns the non-null distinct values of column, most frequent first.
// Ties keep first-appearance order.
func (s *Statistics) ValueCounts(column string) ([]ValueCount, error) {
	values, err := s.values(column)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	var counts []ValueCount
	for _, v := range values {
		if table.IsNull(v) {
			continue
		}
		key := table.Key(v)
		if i, ok := index[key]; ok {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, ValueCount{Value: v, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts, nil
}

func (s *Statistics) NullCount(column string) (int, error) {
	values, err := s.values(column)
	if err != nil {
		return 0, err
	}
	return countNulls(values), nil
}

// NullCounts returns the null count of every column.
func (s *Statistics) NullCounts() map[string]int {
	counts := make(map[string]int, s.t.Width())
	for _, name := range s.t.Columns() {
		values, _ := s.t.Values(name)
		counts[name] = countNulls(values)
	}
	return counts
}

func countNulls(values []any) int {
	n := 0
	for _, v := range values {
		if table.IsNull(v) {
			n++
		}
	}
	return n
}

// Describe summarizes every column in table order.
func (s *Statistics) Describe() ([]ColumnInfo, error) {
	infos := make([]ColumnInfo, 0, s.t.Width())
	for _, name := range s.t.Columns() {
		values, _ := s.t.Values(name)
		info := ColumnInfo{Name: name, Kind: columnKind(values)}

		unique := make(map[string]struct{})
		var nums []float64
		numeric := true
		for _, v := range values {
			if table.IsNull(v) {
				info.Nulls++
				continue
			}
			info.NonNull++
			unique[table.Key(v)] = struct{}{}
			if !table.IsNumeric(v) {
				numeric = false
				continue
			}
			f, _ := table.AsFloat(v)
			nums = append(nums, f)
		}
		info.Unique = len(unique)

		if numeric && len(nums) > 0 {
			summary, err := summarize(nums)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", name, err)
			}
			info.Numeric = summary
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// columnKind is the single kind of the non-null values, "mixed" or "null".
func columnKind(values []any) string {
	kind := table.KindNull
	for _, v := range values {
		if table.IsNull(v) {
			continue
		}
		k := table.KindOf(v)
		if kind == table.KindNull {
			kind = k
		} else if k != kind {
			return "mixed"
		}
	}
	return string(kind)
}

func summarize(nums []float64) (*Summary, error) {
	data := stats.Float64Data(nums)
	out := &Summary{Count: len(nums)}

	var err error
	if out.Mean, err = data.Mean(); err != nil {
		return nil, err
	}
	if out.Min, err = data.Min(); err != nil {
		return nil, err
	}
	if out.Max, err = data.Max(); err != nil {
		return nil, err
	}
	if out.Median, err = data.Median(); err != nil {
		return nil, err
	}
	if len(nums) > 1 {
		if out.StdDev, err = data.StandardDeviationSample(); err != nil {
			return nil, err
		}
	}
	out.Q1, out.Q3 = out.Median, out.Median
	if len(nums) > 2 {
		q, err := stats.Quartile(data)
		if err != nil {
			return nil, err
		}
		out.Q1, out.Q3 = q.Q1, q.Q3
	}
	return out, nil
}
