// Package injector applies bounded, randomized data-quality defects to generated tables:
// duplicated values, blanks, targeted substitutions, misaligned dates and corrupted formats.
//
// Every operation mutates the table it is given and returns that same table. Callers should
// treat the returned table as the only valid continuation. Preconditions (unknown columns,
// percentages outside [0.1, 100], malformed condition sets) are checked before anything is
// written, so a failed call leaves the table untouched.
package injector

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Rana718/mockdb/internal/random"
	"github.com/Rana718/mockdb/internal/table"
	"go.uber.org/zap"
)

const (
	MinPercent = 0.1
	MaxPercent = 100.0
)

var (
	ErrPercentageOutOfRange    = errors.New("percentage out of range")
	ErrNonContiguousConditions = errors.New("conditions are not contiguous")
	ErrTooManyConditions       = errors.New("too many conditions")
	ErrNoConditions            = errors.New("no conditions supplied")
	ErrTypeMismatch            = errors.New("value type does not match column")
	ErrEmptyTarget             = errors.New("target substring is empty")
)

// Percent is an optional coverage percentage. The zero value is unset, in which case
// each operation draws a fresh default on every call.
type Percent struct {
	value float64
	set   bool
}

func Pct(v float64) Percent {
	return Percent{value: v, set: true}
}

func (p Percent) IsSet() bool {
	return p.set
}

func (p Percent) Value() float64 {
	return p.value
}

func (p Percent) String() string {
	if !p.set {
		return "default"
	}
	return fmt.Sprintf("%g%%", p.value)
}

type Injector struct {
	rng *random.Source
	log *zap.Logger
	now func() time.Time
}

func New(rng *random.Source, log *zap.Logger) *Injector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Injector{
		rng: rng,
		log: log,
		now: time.Now,
	}
}

// WithClock replaces the clock used for "today" in date misalignment.
func (inj *Injector) WithClock(now func() time.Time) *Injector {
	inj.now = now
	return inj
}

func (inj *Injector) today() time.Time {
	return random.Day(inj.now())
}

// resolve validates p, drawing an integer percentage from [lo, hi] when p is unset.
func (inj *Injector) resolve(name string, p Percent, lo, hi int) (float64, error) {
	v := p.value
	if !p.set {
		v = float64(inj.rng.IntBetween(lo, hi))
	}
	if math.IsNaN(v) || v < MinPercent || v > MaxPercent {
		return 0, fmt.Errorf("%w: %s value of %g is not between %g%% - %g%%",
			ErrPercentageOutOfRange, name, v, MinPercent, MaxPercent)
	}
	return v, nil
}

// SelectionSize is round(n * pct / 100) with ties to even, capped at n.
func SelectionSize(n int, pct float64) int {
	k := int(math.RoundToEven(float64(n) * pct / 100))
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}
	return k
}

// choose draws a coverage-sized subset of candidates without replacement.
func (inj *Injector) choose(candidates []int, pct float64) []int {
	k := SelectionSize(len(candidates), pct)
	picked := inj.rng.Sample(len(candidates), k)
	rows := make([]int, len(picked))
	for i, idx := range picked {
		rows[i] = candidates[idx]
	}
	return rows
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func (inj *Injector) logApplied(op string, t *table.Table, column string, pct float64, candidates, mutated int) {
	inj.log.Debug("mutation applied",
		zap.String("op", op),
		zap.String("table", t.Name),
		zap.String("column", column),
		zap.Float64("percent", pct),
		zap.Int("candidates", candidates),
		zap.Int("mutated", mutated),
	)
}

func containsFold(v any, sub string) bool {
	if v == nil {
		return false
	}
	return strings.Contains(strings.ToLower(table.Format(v)), strings.ToLower(sub))
}
