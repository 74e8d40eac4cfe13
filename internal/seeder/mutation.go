package seeder

import (
	"fmt"

	"github.com/Rana718/mockdb/internal/injector"
	"github.com/Rana718/mockdb/internal/table"
)

func percent(v *float64) injector.Percent {
	if v == nil {
		return injector.Percent{}
	}
	return injector.Pct(*v)
}

func applyMutation(inj *injector.Injector, t *table.Table, m MutationSpec) error {
	p := percent(m.Percent)
	var err error

	switch m.Op {
	case OpDuplicateValues:
		_, err = inj.DuplicateValues(t, m.Column, percent(m.ValuePercent), p)
	case OpOverride:
		value := m.Value
		if value == nil {
			value = ""
		}
		_, err = inj.OverrideWithValue(t, m.Column, p, value)
	case OpSubstitute:
		_, err = inj.SubstituteTargeted(t, m.Column, p, m.Target, m.Replacement)
	case OpReplaceNonMatching:
		_, err = inj.ReplaceNonMatching(t, m.Column, p, m.Target, m.Replacement)
	case OpConditionalOverride:
		conds, cerr := injector.NewConditions(m.Conditions...)
		if cerr != nil {
			return cerr
		}
		value := m.Value
		if value == nil {
			value = ""
		}
		_, err = inj.ConditionalOverride(t, conds, m.Column, value, p)
	case OpAbbreviate:
		_, err = inj.AbbreviateAddressTerms(t, m.Column, p)
	case OpMisalignClosedDate:
		var opts []injector.MisalignOption
		if m.OpenField != "" {
			opts = append(opts, injector.WithOpenField(m.OpenField))
		}
		if m.ModifiedField != "" {
			opts = append(opts, injector.WithModifiedField(m.ModifiedField))
		}
		if m.Window != nil {
			opts = append(opts, injector.WithinOpenModifiedWindow(*m.Window))
		}
		_, err = inj.MisalignClosedDate(t, m.Column, p, opts...)
	case OpCorruptAddress:
		_, err = inj.CorruptAddressFormat(t, m.Column, p)
	case OpCorruptEmail:
		_, err = inj.CorruptEmailFormat(t, m.Column, p)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidPlan, m.Op)
	}
	return err
}
