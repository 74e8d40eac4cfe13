package seeder

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultRows = 100

var ErrInvalidPlan = errors.New("invalid plan")

// Table names written by the default plan.
const (
	BusinessTable       = "business data"
	LegalTable          = "legal data"
	AddressTable        = "address data"
	EmployeeTable       = "employee data"
	TaxTable            = "tax data"
	FinanceTable        = "finance data"
	EmployeeSystemTable = "Employee System"
)

func pct(v float64) *float64 {
	return &v
}

// DefaultPlan is the standard workshop dataset: six linked business tables, nine log
// tables, an employee to legal association and the usual set of injected defects.
func DefaultPlan(rows int) *Plan {
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Plan{
		Rows: rows,
		Tables: []TableSpec{
			{Kind: KindBusiness, Name: BusinessTable},
			{Kind: KindLegal, Name: LegalTable},
			{Kind: KindAddress, Name: AddressTable},
			{Kind: KindEmployee, Name: EmployeeTable},
			{Kind: KindTax, Name: TaxTable},
			{Kind: KindFinance, Name: FinanceTable},
			{Kind: KindLogGeneral, Name: "Log General Information"},
			{Kind: KindLogDataChange, Name: "Log Datachanges"},
			{Kind: KindLogFileChange, Name: "Log Filechanges"},
			{Kind: KindLogSecurity, Name: "Log Security Details"},
			{Kind: KindLogUserWeb, Name: "Log User Web Activity"},
			{Kind: KindLogUserServer, Name: "Log User Server Activity"},
			{Kind: KindLogUserAccount, Name: "Log User Account Activity"},
			{Kind: KindLogErrors, Name: "Log Errors"},
			{Kind: KindLogErrorCodes, Name: "Log Error Codes"},
		},
		ForeignKeys: []ForeignKeySpec{
			{Source: BusinessTable, Column: "External ID", Targets: []FKTarget{
				{Table: LegalTable, Position: 3, Prefix: "Bus "},
				{Table: AddressTable, Position: 3, Prefix: "Bus "},
			}},
			{Source: LegalTable, Column: "Legal Account", Targets: []FKTarget{
				{Table: AddressTable, Position: 4, Suffix: " ID"},
				{Table: TaxTable, Position: 3, Suffix: " ID"},
				{Table: FinanceTable, Position: 3, Suffix: " ID"},
			}},
			{Source: TaxTable, Column: "Tax Account", Targets: []FKTarget{
				{Table: FinanceTable, Position: 3, Suffix: " ID"},
			}},
		},
		Associations: []AssociationSpec{
			{
				Name: EmployeeSystemTable,
				Type: AssociationPairwise,
				A:    KeyRef{Table: EmployeeTable, Key: "Employee ID"},
				B:    KeyRef{Table: LegalTable, Key: "Legal Account"},
			},
		},
		Mutations: []MutationSpec{
			{Table: BusinessTable, Op: OpDuplicateValues, Column: "External ID", ValuePercent: pct(30), Percent: pct(35)},
			{Table: BusinessTable, Op: OpOverride, Column: "Company Name", Percent: pct(12), Value: ""},
			{Table: BusinessTable, Op: OpOverride, Column: "Modified Date", Percent: pct(7), Value: ""},

			{Table: LegalTable, Op: OpDuplicateValues, Column: "Legal Account", ValuePercent: pct(21), Percent: pct(25)},
			{Table: LegalTable, Op: OpOverride, Column: "Legal Firm", Percent: pct(16), Value: ""},
			{Table: LegalTable, Op: OpOverride, Column: "LE Modified Date", Percent: pct(12), Value: ""},

			{Table: AddressTable, Op: OpOverride, Column: "Zip Code", Percent: pct(12), Value: ""},
			{Table: AddressTable, Op: OpAbbreviate, Column: "Address Street", Percent: pct(22)},
			{Table: AddressTable, Op: OpSubstitute, Column: "Original Country", Percent: pct(11), Target: "RUS", Replacement: "GER"},
			{Table: AddressTable, Op: OpReplaceNonMatching, Column: "Original Country", Percent: pct(15), Target: "RUS", Replacement: "RUS"},

			{Table: BusinessTable, Op: OpMisalignClosedDate, Column: "Closed Date", Percent: pct(15), OpenField: "Creation Date", ModifiedField: "Modified Date"},
			{Table: LegalTable, Op: OpMisalignClosedDate, Column: "LE Closed Date", Percent: pct(8), OpenField: "LE Creation Date"},
			{Table: LegalTable, Op: OpMisalignClosedDate, Column: "LE Closed Date", Percent: pct(18), ModifiedField: "LE Modified Date"},

			{Table: AddressTable, Op: OpCorruptAddress, Column: "Address Street", Percent: pct(15)},
			{Table: EmployeeTable, Op: OpCorruptEmail, Column: "Employee Email", Percent: pct(15)},
		},
	}
}

// LoadPlan reads a YAML plan file and validates it.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if plan.Rows <= 0 {
		plan.Rows = DefaultRows
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Save writes the plan as YAML.
func (p *Plan) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (p *Plan) rowsFor(spec TableSpec) int {
	if spec.Rows > 0 {
		return spec.Rows
	}
	if p.Rows > 0 {
		return p.Rows
	}
	return DefaultRows
}

var knownOps = map[Op]bool{
	OpDuplicateValues:     true,
	OpOverride:            true,
	OpSubstitute:          true,
	OpReplaceNonMatching:  true,
	OpConditionalOverride: true,
	OpAbbreviate:          true,
	OpMisalignClosedDate:  true,
	OpCorruptAddress:      true,
	OpCorruptEmail:        true,
}

// Validate checks that every referenced table exists and every kind and op is known.
// Column names are checked later, when the tables exist.
func (p *Plan) Validate() error {
	if len(p.Tables) == 0 {
		return fmt.Errorf("%w: no tables defined", ErrInvalidPlan)
	}

	names := make(map[string]bool, len(p.Tables))
	for _, t := range p.Tables {
		if t.Name == "" {
			return fmt.Errorf("%w: table of kind %q has no name", ErrInvalidPlan, t.Kind)
		}
		if names[t.Name] {
			return fmt.Errorf("%w: duplicate table name %q", ErrInvalidPlan, t.Name)
		}
		if _, ok := assemblers[t.Kind]; !ok {
			return fmt.Errorf("%w: table %q: %w %q", ErrInvalidPlan, t.Name, ErrUnknownKind, t.Kind)
		}
		if t.Rows < 0 {
			return fmt.Errorf("%w: table %q has a negative row count", ErrInvalidPlan, t.Name)
		}
		names[t.Name] = true
	}

	for _, fk := range p.ForeignKeys {
		if !names[fk.Source] {
			return fmt.Errorf("%w: foreign key source %q is not a table", ErrInvalidPlan, fk.Source)
		}
		for _, target := range fk.Targets {
			if !names[target.Table] {
				return fmt.Errorf("%w: foreign key target %q is not a table", ErrInvalidPlan, target.Table)
			}
		}
	}

	for _, a := range p.Associations {
		if a.Name == "" || names[a.Name] {
			return fmt.Errorf("%w: association name %q is empty or already used", ErrInvalidPlan, a.Name)
		}
		refs := []KeyRef{a.A, a.B}
		switch a.Type {
		case AssociationPairwise:
		case AssociationTriple:
			if a.C == nil {
				return fmt.Errorf("%w: triple association %q needs a third table", ErrInvalidPlan, a.Name)
			}
			refs = append(refs, *a.C)
		case AssociationTrait:
			if len(a.Traits) == 0 {
				return fmt.Errorf("%w: trait association %q has no traits", ErrInvalidPlan, a.Name)
			}
		default:
			return fmt.Errorf("%w: association %q has unknown type %q", ErrInvalidPlan, a.Name, a.Type)
		}
		for _, ref := range refs {
			if !names[ref.Table] {
				return fmt.Errorf("%w: association %q references unknown table %q", ErrInvalidPlan, a.Name, ref.Table)
			}
		}
		names[a.Name] = true
	}

	for i, m := range p.Mutations {
		if !names[m.Table] {
			return fmt.Errorf("%w: mutation %d references unknown table %q", ErrInvalidPlan, i+1, m.Table)
		}
		if !knownOps[m.Op] {
			return fmt.Errorf("%w: mutation %d has unknown op %q", ErrInvalidPlan, i+1, m.Op)
		}
	}
	return nil
}
