// Package linker attaches synthetic foreign keys between generated tables and
// builds association tables that relate rows of two or three tables.
package linker

import (
	"errors"
	"fmt"

	"github.com/Rana718/mockdb/internal/random"
	"github.com/Rana718/mockdb/internal/table"
	"go.uber.org/zap"
)

const (
	DefaultRelationshipIDName = "Relationship ID"
	TraitColumn               = "Relationship Trait"
	DefaultPosition           = 3
)

var ErrEmptyKeyColumn = errors.New("key column has no values to draw from")

// ForeignKey describes a key column copied from a source table into a target.
// Position is one-based.
type ForeignKey struct {
	Column   string `yaml:"column" json:"column"`
	Position int    `yaml:"position" json:"position"`
	Prefix   string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix   string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
}

// Name is the column name the key receives in the target table.
func (fk ForeignKey) Name() string {
	return fk.Prefix + fk.Column + fk.Suffix
}

type Linker struct {
	rng                *random.Source
	log                *zap.Logger
	RelationshipIDName string
}

func New(rng *random.Source, log *zap.Logger) *Linker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Linker{
		rng:                rng,
		log:                log,
		RelationshipIDName: DefaultRelationshipIDName,
	}
}

// AddForeignKey draws one value per target row, with replacement, from the source key
// column and inserts it into target. An existing column with the same name is replaced.
// The source table is not modified. The returned table is target.
func (l *Linker) AddForeignKey(source *table.Table, target *table.Table, fk ForeignKey) (*table.Table, error) {
	keys, err := source.Values(fk.Column)
	if err != nil {
		return nil, fmt.Errorf("foreign key source: %w", err)
	}

	position := fk.Position
	if position == 0 {
		position = DefaultPosition
	}

	name := fk.Name()
	width := target.Width()
	if target.Has(name) {
		width--
	}
	if position < 1 || position > width+1 {
		return nil, fmt.Errorf("%w: position %d for %q in table %q (allowed 1..%d)",
			table.ErrInvalidPosition, position, name, target.Name, width+1)
	}

	values, err := l.draw(keys, target.Len(), source.Name, fk.Column)
	if err != nil {
		return nil, err
	}

	if target.Has(name) {
		if err := target.Drop(name); err != nil {
			return nil, err
		}
	}
	if err := target.Insert(position-1, name, values); err != nil {
		return nil, err
	}

	l.log.Debug("foreign key added",
		zap.String("source", source.Name),
		zap.String("target", target.Name),
		zap.String("column", name),
		zap.Int("position", position),
		zap.Int("rows", len(values)),
	)
	return target, nil
}

// BuildPairwise relates every row of a to a random row of b. The relationship id
// is a permutation of 1..len(a). A key whose name is already taken in the result
// is prefixed with its source table name, see keyName.
func (l *Linker) BuildPairwise(name string, a *table.Table, keyA string, b *table.Table, keyB string) (*table.Table, error) {
	rel, err := l.base(name, a, keyA, l.permutationIDs(a.Len()))
	if err != nil {
		return nil, err
	}
	if err := l.appendDrawn(rel, b, keyB); err != nil {
		return nil, err
	}
	l.logBuilt(rel)
	return rel, nil
}

// BuildTriple relates every row of a to a random row of b and of c. Unlike BuildPairwise,
// the relationship id is drawn with replacement from 1..len(a), so it may repeat.
func (l *Linker) BuildTriple(name string, a *table.Table, keyA string, b *table.Table, keyB string, c *table.Table, keyC string) (*table.Table, error) {
	ids := make([]any, a.Len())
	for i := range ids {
		ids[i] = int64(l.rng.IntBetween(1, a.Len()))
	}

	rel, err := l.base(name, a, keyA, ids)
	if err != nil {
		return nil, err
	}
	if err := l.appendDrawn(rel, b, keyB); err != nil {
		return nil, err
	}
	if err := l.appendDrawn(rel, c, keyC); err != nil {
		return nil, err
	}
	l.logBuilt(rel)
	return rel, nil
}

// BuildPairwiseWithTrait is BuildPairwise plus a trait column sampled from traits.
func (l *Linker) BuildPairwiseWithTrait(name string, a *table.Table, keyA string, b *table.Table, keyB string, traits []any) (*table.Table, error) {
	if len(traits) == 0 && a.Len() > 0 {
		return nil, fmt.Errorf("%w: no trait values supplied for %q", ErrEmptyKeyColumn, name)
	}
	rel, err := l.base(name, a, keyA, l.permutationIDs(a.Len()))
	if err != nil {
		return nil, err
	}
	if err := l.appendDrawn(rel, b, keyB); err != nil {
		return nil, err
	}

	values, err := l.draw(traits, rel.Len(), name, TraitColumn)
	if err != nil {
		return nil, err
	}
	if err := rel.Append(keyName(rel, name, TraitColumn), values); err != nil {
		return nil, err
	}
	l.logBuilt(rel)
	return rel, nil
}

func (l *Linker) base(name string, a *table.Table, keyA string, ids []any) (*table.Table, error) {
	keys, err := a.Values(keyA)
	if err != nil {
		return nil, fmt.Errorf("relationship %q: %w", name, err)
	}
	copied := make([]any, len(keys))
	copy(copied, keys)

	rel := table.New(name)
	if err := rel.Append(l.RelationshipIDName, ids); err != nil {
		return nil, err
	}
	if err := rel.Append(keyName(rel, a.Name, keyA), copied); err != nil {
		return nil, fmt.Errorf("relationship %q: %w", name, err)
	}
	return rel, nil
}

func (l *Linker) appendDrawn(rel *table.Table, src *table.Table, key string) error {
	keys, err := src.Values(key)
	if err != nil {
		return fmt.Errorf("relationship %q: %w", rel.Name, err)
	}
	values, err := l.draw(keys, rel.Len(), src.Name, key)
	if err != nil {
		return err
	}
	if err := rel.Append(keyName(rel, src.Name, key), values); err != nil {
		return fmt.Errorf("relationship %q: %w", rel.Name, err)
	}
	return nil
}

// keyName returns column unless rel already has it, then "<from> <column>", then
// "<from> <column> 2", "<from> <column> 3" and so on.
func keyName(rel *table.Table, from, column string) string {
	if !rel.Has(column) {
		return column
	}
	name := from + " " + column
	for n := 2; rel.Has(name); n++ {
		name = fmt.Sprintf("%s %s %d", from, column, n)
	}
	return name
}

func (l *Linker) draw(pool []any, n int, from, column string) ([]any, error) {
	if n > 0 && len(pool) == 0 {
		return nil, fmt.Errorf("%w: %q in %q", ErrEmptyKeyColumn, column, from)
	}
	out := make([]any, n)
	for i := range out {
		out[i] = pool[l.rng.Pick(len(pool))]
	}
	return out, nil
}

func (l *Linker) permutationIDs(n int) []any {
	ids := make([]any, n)
	for i, v := range l.rng.Permutation(n) {
		ids[i] = int64(v)
	}
	return ids
}

func (l *Linker) logBuilt(rel *table.Table) {
	l.log.Debug("relationship table built",
		zap.String("table", rel.Name),
		zap.Strings("columns", rel.Columns()),
		zap.Int("rows", rel.Len()),
	)
}
