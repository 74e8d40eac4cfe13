package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rana718/mockdb/internal/injector"
	"github.com/Rana718/mockdb/internal/linker"
	"github.com/Rana718/mockdb/internal/random"
	"github.com/Rana718/mockdb/internal/table"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Seeder struct {
	log *zap.Logger
	now func() time.Time
}

type Option func(*Seeder)

func WithLogger(log *zap.Logger) Option {
	return func(s *Seeder) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock fixes "today" for generated and misaligned dates.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSeeder(opts ...Option) *Seeder {
	s := &Seeder{
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the plan: generate every table, apply foreign keys in dependency order,
// build association tables, then apply mutations in the order they are declared.
// All randomness comes from one source seeded with plan.Seed.
func (s *Seeder) Run(ctx context.Context, plan *Plan) (*Result, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	started := s.now()
	rng := random.New(plan.Seed)
	gen := NewDataGenerator(rng, s.now)
	link := linker.New(rng, s.log)
	inj := injector.New(rng, s.log).WithClock(s.now)

	color.Cyan("🌱 Starting data generation (seed %d)...", rng.Seed())

	tables := make(map[string]*table.Table, len(plan.Tables))
	var ordered []*table.Table
	for _, spec := range plan.Tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := gen.Build(spec.Kind, spec.Name, plan.rowsFor(spec))
		if err != nil {
			return nil, err
		}
		tables[spec.Name] = t
		ordered = append(ordered, t)
		s.log.Debug("table generated",
			zap.String("table", t.Name),
			zap.String("kind", string(spec.Kind)),
			zap.Int("rows", t.Len()),
		)
	}
	color.Green("📊 Generated %d tables", len(ordered))

	if err := s.applyForeignKeys(ctx, plan, tables, link); err != nil {
		return nil, err
	}

	for _, a := range plan.Associations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel, err := buildAssociation(link, a, tables)
		if err != nil {
			return nil, fmt.Errorf("failed to build association %s: %w", a.Name, err)
		}
		tables[rel.Name] = rel
		ordered = append(ordered, rel)
		color.Cyan("  🔗 %s (%d rows)", rel.Name, rel.Len())
	}

	for i, m := range plan.Mutations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := applyMutation(inj, tables[m.Table], m); err != nil {
			return nil, fmt.Errorf("mutation %d (%s on %s.%s): %w", i+1, m.Op, m.Table, m.Column, err)
		}
	}
	if len(plan.Mutations) > 0 {
		color.Cyan("🧪 Applied %d mutations", len(plan.Mutations))
	}

	result := &Result{
		Tables: ordered,
		Manifest: Manifest{
			RunID:      uuid.NewString(),
			Seed:       rng.Seed(),
			StartedAt:  started,
			FinishedAt: s.now(),
			Mutations:  len(plan.Mutations),
		},
	}
	for _, t := range ordered {
		result.Manifest.Tables = append(result.Manifest.Tables, ManifestTable{
			Name:    t.Name,
			Rows:    t.Len(),
			Columns: t.Columns(),
		})
	}

	color.Green("✅ Data generation completed successfully!")
	return result, nil
}

// applyForeignKeys links each table only after all of its key sources have been linked.
// Foreign keys into the same table are applied in the order they are declared.
func (s *Seeder) applyForeignKeys(ctx context.Context, plan *Plan, tables map[string]*table.Table, link *linker.Linker) error {
	if len(plan.ForeignKeys) == 0 {
		return nil
	}

	graph := NewDependencyGraph()
	for _, fk := range plan.ForeignKeys {
		graph.AddTable(fk.Source)
		for _, target := range fk.Targets {
			graph.AddDependency(target.Table, fk.Source)
		}
	}
	order, err := graph.BuildInsertionOrder()
	if err != nil {
		return fmt.Errorf("failed to build link order: %w", err)
	}
	color.Cyan("📋 Link order: %s", strings.Join(order, " → "))

	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, fk := range plan.ForeignKeys {
			for _, target := range fk.Targets {
				if target.Table != name {
					continue
				}
				_, err := link.AddForeignKey(tables[fk.Source], tables[name], linker.ForeignKey{
					Column:   fk.Column,
					Position: target.Position,
					Prefix:   target.Prefix,
					Suffix:   target.Suffix,
				})
				if err != nil {
					return fmt.Errorf("failed to link %s into %s: %w", fk.Source, name, err)
				}
			}
		}
	}
	return nil
}

func buildAssociation(link *linker.Linker, a AssociationSpec, tables map[string]*table.Table) (*table.Table, error) {
	switch a.Type {
	case AssociationTriple:
		return link.BuildTriple(a.Name,
			tables[a.A.Table], a.A.Key,
			tables[a.B.Table], a.B.Key,
			tables[a.C.Table], a.C.Key)
	case AssociationTrait:
		traits := make([]any, len(a.Traits))
		for i, t := range a.Traits {
			traits[i] = t
		}
		return link.BuildPairwiseWithTrait(a.Name, tables[a.A.Table], a.A.Key, tables[a.B.Table], a.B.Key, traits)
	default:
		return link.BuildPairwise(a.Name, tables[a.A.Table], a.A.Key, tables[a.B.Table], a.B.Key)
	}
}
