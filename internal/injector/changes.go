package injector

import (
	"fmt"
	"regexp"

	"github.com/Rana718/mockdb/internal/table"
)

// SubstituteTargeted rewrites rowPct% of the rows containing target (case-insensitive),
// replacing every occurrence of target with replacement. An unset percentage defaults
// to a fresh draw from 10-20.
func (inj *Injector) SubstituteTargeted(t *table.Table, column string, rowPct Percent, target, replacement string) (*table.Table, error) {
	values, err := t.Values(column)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return nil, fmt.Errorf("%w: nothing to substitute in %q", ErrEmptyTarget, column)
	}
	p, err := inj.resolve("row coverage percentage", rowPct, 10, 20)
	if err != nil {
		return nil, err
	}

	var candidates []int
	for i, v := range values {
		if containsFold(v, target) {
			candidates = append(candidates, i)
		}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(target))
	rows := inj.choose(candidates, p)
	for _, row := range rows {
		values[row] = re.ReplaceAllLiteralString(table.Format(values[row]), replacement)
	}

	inj.logApplied("substitute_targeted", t, column, p, len(candidates), len(rows))
	return t, nil
}

// ReplaceNonMatching overwrites rowPct% of the rows that do not contain excluded
// (case-insensitive) with replacement. Null cells count as empty text and are candidates.
// An unset percentage defaults to a fresh draw from 10-20.
func (inj *Injector) ReplaceNonMatching(t *table.Table, column string, rowPct Percent, excluded string, replacement any) (*table.Table, error) {
	values, err := t.Values(column)
	if err != nil {
		return nil, err
	}
	p, err := inj.resolve("row coverage percentage", rowPct, 10, 20)
	if err != nil {
		return nil, err
	}

	var candidates []int
	for i, v := range values {
		if v == nil {
			v = ""
		}
		if !containsFold(v, excluded) {
			candidates = append(candidates, i)
		}
	}

	rows := inj.choose(candidates, p)
	for _, row := range rows {
		values[row] = replacement
	}

	inj.logApplied("replace_non_matching", t, column, p, len(candidates), len(rows))
	return t, nil
}

// ConditionalOverride sets changeField to changeValue on rowPct% of the rows where every
// condition matches. Blank values ("" or nil) are always accepted; any other value must
// have the same kind as the column's existing non-blank values. An unset percentage
// defaults to a fresh draw from 10-20.
func (inj *Injector) ConditionalOverride(t *table.Table, conds Conditions, changeField string, changeValue any, rowPct Percent) (*table.Table, error) {
	if conds.Degree() == 0 {
		return nil, fmt.Errorf("%w: conditional override on %q", ErrNoConditions, changeField)
	}

	fields := make([][]any, 0, conds.Degree())
	for _, c := range conds.terms {
		values, err := t.Values(c.Field)
		if err != nil {
			return nil, fmt.Errorf("condition field: %w", err)
		}
		fields = append(fields, values)
	}
	target, err := t.Values(changeField)
	if err != nil {
		return nil, err
	}
	if err := checkKind(target, changeValue, changeField); err != nil {
		return nil, err
	}
	p, err := inj.resolve("row coverage percentage", rowPct, 10, 20)
	if err != nil {
		return nil, err
	}

	var candidates []int
	for row := range target {
		matched := true
		for i, c := range conds.terms {
			if !containsFold(fields[i][row], c.Value) {
				matched = false
				break
			}
		}
		if matched {
			candidates = append(candidates, row)
		}
	}

	rows := inj.choose(candidates, p)
	for _, row := range rows {
		target[row] = changeValue
	}

	inj.logApplied("conditional_override", t, changeField, p, len(candidates), len(rows))
	return t, nil
}

// checkKind rejects a value whose kind differs from the column's uniform kind. Columns
// with no non-blank values or with mixed kinds accept anything.
func checkKind(values []any, v any, column string) error {
	if table.IsBlank(v) {
		return nil
	}
	var kind table.Kind
	for _, existing := range values {
		if table.IsBlank(existing) {
			continue
		}
		k := table.KindOf(existing)
		if kind == "" {
			kind = k
		} else if kind != k {
			return nil
		}
	}
	if kind == "" || kind == table.KindOf(v) {
		return nil
	}
	return fmt.Errorf("%w: %q holds %s values, got %s %v",
		ErrTypeMismatch, column, kind, table.KindOf(v), v)
}
