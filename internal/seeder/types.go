package seeder

import (
	"time"

	"github.com/Rana718/mockdb/internal/injector"
	"github.com/Rana718/mockdb/internal/table"
)

// Plan describes a full generation run: which tables to build, how they are linked
// and which defects are injected afterwards.
type Plan struct {
	Seed         int64             `yaml:"seed,omitempty"`
	Rows         int               `yaml:"rows,omitempty"`
	Tables       []TableSpec       `yaml:"tables"`
	ForeignKeys  []ForeignKeySpec  `yaml:"foreign_keys,omitempty"`
	Associations []AssociationSpec `yaml:"associations,omitempty"`
	Mutations    []MutationSpec    `yaml:"mutations,omitempty"`
}

type TableSpec struct {
	Kind Kind   `yaml:"kind"`
	Name string `yaml:"name"`
	Rows int    `yaml:"rows,omitempty"` // Zero uses Plan.Rows
}

// ForeignKeySpec copies Column of Source into every target.
type ForeignKeySpec struct {
	Source  string     `yaml:"source"`
	Column  string     `yaml:"column"`
	Targets []FKTarget `yaml:"targets"`
}

type FKTarget struct {
	Table    string `yaml:"table"`
	Position int    `yaml:"position,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	Suffix   string `yaml:"suffix,omitempty"`
}

type AssociationType string

const (
	AssociationPairwise AssociationType = "pairwise"
	AssociationTriple   AssociationType = "triple"
	AssociationTrait    AssociationType = "trait"
)

type KeyRef struct {
	Table string `yaml:"table"`
	Key   string `yaml:"key"`
}

type AssociationSpec struct {
	Name   string          `yaml:"name"`
	Type   AssociationType `yaml:"type"`
	A      KeyRef          `yaml:"a"`
	B      KeyRef          `yaml:"b"`
	C      *KeyRef         `yaml:"c,omitempty"`
	Traits []string        `yaml:"traits,omitempty"`
}

type Op string

const (
	OpDuplicateValues     Op = "duplicate_values"
	OpOverride            Op = "override_with_value"
	OpSubstitute          Op = "substitute_targeted"
	OpReplaceNonMatching  Op = "replace_non_matching"
	OpConditionalOverride Op = "conditional_override"
	OpAbbreviate          Op = "abbreviate_address_terms"
	OpMisalignClosedDate  Op = "misalign_closed_date"
	OpCorruptAddress      Op = "corrupt_address_format"
	OpCorruptEmail        Op = "corrupt_email_format"
)

// MutationSpec is one injector call. Percentages left out fall back to the
// operation's drawn default.
type MutationSpec struct {
	Table         string                `yaml:"table"`
	Op            Op                    `yaml:"op"`
	Column        string                `yaml:"column"`
	Percent       *float64              `yaml:"percent,omitempty"`
	ValuePercent  *float64              `yaml:"value_percent,omitempty"`
	Value         any                   `yaml:"value,omitempty"`
	Target        string                `yaml:"target,omitempty"`
	Replacement   string                `yaml:"replacement,omitempty"`
	Conditions    []*injector.Condition `yaml:"conditions,omitempty"`
	OpenField     string                `yaml:"open_field,omitempty"`
	ModifiedField string                `yaml:"modified_field,omitempty"`
	Window        *bool                 `yaml:"window,omitempty"`
}

// Result holds the generated tables in plan order followed by association tables.
type Result struct {
	Tables   []*table.Table
	Manifest Manifest
}

// Table returns the generated table with the given name, or nil.
func (r *Result) Table(name string) *table.Table {
	for _, t := range r.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

type Manifest struct {
	RunID      string          `yaml:"run_id" json:"run_id"`
	Seed       int64           `yaml:"seed" json:"seed"`
	StartedAt  time.Time       `yaml:"started_at" json:"started_at"`
	FinishedAt time.Time       `yaml:"finished_at" json:"finished_at"`
	Mutations  int             `yaml:"mutations" json:"mutations"`
	Tables     []ManifestTable `yaml:"tables" json:"tables"`
}

type ManifestTable struct {
	Name    string   `yaml:"name" json:"name"`
	File    string   `yaml:"file,omitempty" json:"file,omitempty"`
	Rows    int      `yaml:"rows" json:"rows"`
	Columns []string `yaml:"columns" json:"columns"`
}
