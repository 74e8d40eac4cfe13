package injector

import (
	"github.com/Rana718/mockdb/internal/table"
)

// DuplicateValues picks valuePct% of the column's distinct values as a palette and
// overwrites rowPct% of all rows with random palette entries. Unset percentages
// default to a fresh draw from 10-30.
func (inj *Injector) DuplicateValues(t *table.Table, column string, valuePct, rowPct Percent) (*table.Table, error) {
	values, err := t.Values(column)
	if err != nil {
		return nil, err
	}
	vp, err := inj.resolve("duplicate value percentage", valuePct, 10, 30)
	if err != nil {
		return nil, err
	}
	rp, err := inj.resolve("row coverage percentage", rowPct, 10, 30)
	if err != nil {
		return nil, err
	}

	var distinct []any
	seen := make(map[string]bool)
	for _, v := range values {
		k := table.Key(v)
		if !seen[k] {
			seen[k] = true
			distinct = append(distinct, v)
		}
	}

	size := SelectionSize(len(distinct), vp)
	if size == 0 && len(distinct) > 0 {
		size = 1
	}
	palette := make([]any, 0, size)
	for _, idx := range inj.rng.Sample(len(distinct), size) {
		palette = append(palette, distinct[idx])
	}

	rows := inj.choose(allRows(len(values)), rp)
	if len(palette) > 0 {
		for _, row := range rows {
			values[row] = palette[inj.rng.Pick(len(palette))]
		}
	}

	inj.logApplied("duplicate_values", t, column, rp, len(values), len(rows))
	return t, nil
}

// OverrideWithValue sets rowPct% of all rows to value. Pass "" to simulate blanks.
// An unset percentage defaults to a fresh draw from 10-20.
func (inj *Injector) OverrideWithValue(t *table.Table, column string, rowPct Percent, value any) (*table.Table, error) {
	values, err := t.Values(column)
	if err != nil {
		return nil, err
	}
	p, err := inj.resolve("row coverage percentage", rowPct, 10, 20)
	if err != nil {
		return nil, err
	}

	rows := inj.choose(allRows(len(values)), p)
	for _, row := range rows {
		values[row] = value
	}

	inj.logApplied("override_with_value", t, column, p, len(values), len(rows))
	return t, nil
}
