// Package cleaner applies in-place cleaning operations to a table and records what each
// one changed.
package cleaner

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Rana718/mockdb/internal/table"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

var (
	ErrNotNumeric = errors.New("column is not numeric")
	ErrNotString  = errors.New("column is not a string column")
)

// Operation records one cleaning step.
type Operation struct {
	Table    string `json:"table" yaml:"table"`
	Column   string `json:"column,omitempty" yaml:"column,omitempty"`
	Name     string `json:"name" yaml:"name"`
	Affected int    `json:"affected" yaml:"affected"`
	Detail   string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func (o Operation) String() string {
	target := o.Table
	if o.Column != "" {
		target = fmt.Sprintf("%s.%s", o.Table, o.Column)
	}
	if o.Detail != "" {
		return fmt.Sprintf("%s on %s: %d affected (%s)", o.Name, target, o.Affected, o.Detail)
	}
	return fmt.Sprintf("%s on %s: %d affected", o.Name, target, o.Affected)
}

// Cleaner mutates tables and keeps the history of operations it applied.
type Cleaner struct {
	log     *zap.Logger
	history []Operation
}

func New(log *zap.Logger) *Cleaner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cleaner{log: log}
}

func (c *Cleaner) History() []Operation {
	out := make([]Operation, len(c.history))
	copy(out, c.history)
	return out
}

func (c *Cleaner) record(op Operation) Operation {
	c.history = append(c.history, op)
	c.log.Debug("cleaning operation applied",
		zap.String("table", op.Table),
		zap.String("column", op.Column),
		zap.String("operation", op.Name),
		zap.Int("affected", op.Affected),
	)
	return op
}

func (c *Cleaner) column(t *table.Table, name string) ([]any, error) {
	values, err := t.Values(name)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", t.Name, err)
	}
	return values, nil
}

// DropRowsWithNull removes every row holding at least one null.
func (c *Cleaner) DropRowsWithNull(t *table.Table) Operation {
	dropped := t.Filter(func(row int) bool {
		for _, v := range t.Row(row) {
			if table.IsNull(v) {
				return false
			}
		}
		return true
	})
	return c.record(Operation{Table: t.Name, Name: "drop_rows_with_null", Affected: dropped})
}

// DropRowsAllNull removes rows in which every value is null.
func (c *Cleaner) DropRowsAllNull(t *table.Table) Operation {
	dropped := t.Filter(func(row int) bool {
		for _, v := range t.Row(row) {
			if !table.IsNull(v) {
				return true
			}
		}
		return false
	})
	return c.record(Operation{Table: t.Name, Name: "drop_rows_all_null", Affected: dropped})
}

// FillNullWithZero replaces every null in the table with int64(0).
func (c *Cleaner) FillNullWithZero(t *table.Table) Operation {
	filled := 0
	for _, name := range t.Columns() {
		values, _ := t.Values(name)
		for i, v := range values {
			if table.IsNull(v) {
				values[i] = int64(0)
				filled++
			}
		}
	}
	return c.record(Operation{Table: t.Name, Name: "fill_null_with_zero", Affected: filled})
}

// RemoveDuplicates keeps the first occurrence of every distinct row.
func (c *Cleaner) RemoveDuplicates(t *table.Table) Operation {
	seen := make(map[string]bool, t.Len())
	dropped := t.Filter(func(row int) bool {
		key := table.RowKey(t.Row(row))
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
	return c.record(Operation{Table: t.Name, Name: "remove_duplicates", Affected: dropped})
}

// FillNull replaces nulls in column with v.
func (c *Cleaner) FillNull(t *table.Table, column string, v any) (Operation, error) {
	values, err := c.column(t, column)
	if err != nil {
		return Operation{}, err
	}
	filled := fillNulls(values, v)
	return c.record(Operation{
		Table: t.Name, Column: column, Name: "fill_null", Affected: filled,
		Detail: fmt.Sprintf("value %s", table.Format(v)),
	}), nil
}

func fillNulls(values []any, v any) int {
	filled := 0
	for i, cur := range values {
		if table.IsNull(cur) {
			values[i] = v
			filled++
		}
	}
	return filled
}

func numeric(values []any) ([]float64, bool) {
	var nums []float64
	for _, v := range values {
		if table.IsNull(v) {
			continue
		}
		if !table.IsNumeric(v) {
			return nil, false
		}
		f, _ := table.AsFloat(v)
		nums = append(nums, f)
	}
	return nums, true
}

// FillNullWithMean replaces nulls in a numeric column with the mean of its other values.
func (c *Cleaner) FillNullWithMean(t *table.Table, column string) (Operation, error) {
	values, err := c.column(t, column)
	if err != nil {
		return Operation{}, err
	}
	nums, ok := numeric(values)
	if !ok {
		return Operation{}, fmt.Errorf("%w: %q cannot use mean for replacement", ErrNotNumeric, column)
	}
	mean, err := stats.Mean(stats.Float64Data(nums))
	if err != nil {
		return Operation{}, fmt.Errorf("mean of %q: %w", column, err)
	}

	filled := fillNulls(values, mean)
	return c.record(Operation{
		Table: t.Name, Column: column, Name: "fill_null_with_mean", Affected: filled,
		Detail: fmt.Sprintf("mean %g", mean),
	}), nil
}

// ConvertType converts every non-null value of column to kind. Nothing changes when any
// value fails to convert.
func (c *Cleaner) ConvertType(t *table.Table, column string, kind table.Kind) (Operation, error) {
	values, err := c.column(t, column)
	if err != nil {
		return Operation{}, err
	}

	converted := make([]any, len(values))
	changed := 0
	for i, v := range values {
		out, err := Convert(v, kind)
		if err != nil {
			return Operation{}, fmt.Errorf("column %q row %d: %w", column, i, err)
		}
		if table.KindOf(out) != table.KindOf(v) {
			changed++
		}
		converted[i] = out
	}
	copy(values, converted)

	return c.record(Operation{
		Table: t.Name, Column: column, Name: "convert_type", Affected: changed,
		Detail: fmt.Sprintf("to %s", kind),
	}), nil
}

func (c *Cleaner) RenameColumn(t *table.Table, oldName, newName string) (Operation, error) {
	if err := t.Rename(oldName, newName); err != nil {
		return Operation{}, fmt.Errorf("table %q: %w", t.Name, err)
	}
	return c.record(Operation{
		Table: t.Name, Column: newName, Name: "rename_column", Affected: 1,
		Detail: fmt.Sprintf("from %s", oldName),
	}), nil
}

// ReplaceInf replaces positive and negative infinity anywhere in the table with v.
func (c *Cleaner) ReplaceInf(t *table.Table, v any) Operation {
	replaced := 0
	for _, name := range t.Columns() {
		values, _ := t.Values(name)
		for i, cur := range values {
			if table.IsInf(cur) {
				values[i] = v
				replaced++
			}
		}
	}
	return c.record(Operation{Table: t.Name, Name: "replace_inf", Affected: replaced})
}

func (c *Cleaner) mapStrings(t *table.Table, column, name string, fn func(string) string) (Operation, error) {
	values, err := c.column(t, column)
	if err != nil {
		return Operation{}, err
	}
	for _, v := range values {
		if _, ok := v.(string); !ok && !table.IsNull(v) {
			return Operation{}, fmt.Errorf("%w: %q holds %s values", ErrNotString, column, table.KindOf(v))
		}
	}

	changed := 0
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if out := fn(s); out != s {
			values[i] = out
			changed++
		}
	}
	return c.record(Operation{Table: t.Name, Column: column, Name: name, Affected: changed}), nil
}

// TrimSpace strips leading and trailing whitespace from a string column.
func (c *Cleaner) TrimSpace(t *table.Table, column string) (Operation, error) {
	return c.mapStrings(t, column, "trim_space", strings.TrimSpace)
}

func (c *Cleaner) Lower(t *table.Table, column string) (Operation, error) {
	return c.mapStrings(t, column, "lower", strings.ToLower)
}

func (c *Cleaner) Upper(t *table.Table, column string) (Operation, error) {
	return c.mapStrings(t, column, "upper", strings.ToUpper)
}

// RemoveOutliers keeps only rows where lo <= column <= hi. Rows with a null in the
// column are dropped too.
func (c *Cleaner) RemoveOutliers(t *table.Table, column string, lo, hi float64) (Operation, error) {
	values, err := c.column(t, column)
	if err != nil {
		return Operation{}, err
	}
	if _, ok := numeric(values); !ok {
		return Operation{}, fmt.Errorf("%w: %q cannot be used for outlier removal", ErrNotNumeric, column)
	}

	dropped := t.Filter(func(row int) bool {
		f, ok := table.AsFloat(values[row])
		return ok && !math.IsNaN(f) && f >= lo && f <= hi
	})
	return c.record(Operation{
		Table: t.Name, Column: column, Name: "remove_outliers", Affected: dropped,
		Detail: fmt.Sprintf("kept [%g, %g]", lo, hi),
	}), nil
}
