package injector

import (
	"fmt"
)

const maxConditions = 4

// Degree is the number of conjunctive conditions in a Conditions set.
type Degree int

const (
	Single Degree = iota + 1
	Double
	Triple
	Quadruple
)

var slotNames = [maxConditions]string{"primary", "secondary", "tertiary", "quaternary"}

// Condition matches rows whose Field contains Value, ignoring case.
type Condition struct {
	Field string `yaml:"field" json:"field"`
	Value string `yaml:"value" json:"value"`
}

func Match(field, value string) *Condition {
	return &Condition{Field: field, Value: value}
}

// Conditions is a validated set of one to four conditions that must all match.
type Conditions struct {
	terms []Condition
}

// NewConditions builds a condition set from up to four slots in order. The first slot is
// required; a nil slot ends the set and no later slot may be filled.
func NewConditions(slots ...*Condition) (Conditions, error) {
	if len(slots) > maxConditions {
		return Conditions{}, fmt.Errorf("%w: %d supplied, at most %d are supported",
			ErrTooManyConditions, len(slots), maxConditions)
	}
	if len(slots) == 0 || slots[0] == nil || slots[0].Field == "" {
		return Conditions{}, fmt.Errorf("%w: the primary condition is required", ErrNoConditions)
	}

	terms := make([]Condition, 0, len(slots))
	gap := -1
	for i, c := range slots {
		if c == nil || c.Field == "" {
			if gap < 0 {
				gap = i
			}
			continue
		}
		if gap >= 0 {
			return Conditions{}, fmt.Errorf("%w: %s field %q was supplied but the %s field is missing",
				ErrNonContiguousConditions, slotNames[i], c.Field, slotNames[gap])
		}
		terms = append(terms, *c)
	}
	return Conditions{terms: terms}, nil
}

func (c Conditions) Degree() Degree {
	return Degree(len(c.terms))
}

func (c Conditions) Terms() []Condition {
	out := make([]Condition, len(c.terms))
	copy(out, c.terms)
	return out
}
