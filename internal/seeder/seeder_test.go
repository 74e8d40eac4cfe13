package seeder

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Rana718/mockdb/internal/injector"
	"github.com/Rana718/mockdb/internal/random"
	"github.com/Rana718/mockdb/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, time.June, 30, 15, 4, 5, 0, time.UTC) }

func values(t *testing.T, tbl *table.Table, name string) []any {
	t.Helper()
	v, err := tbl.Values(name)
	require.NoError(t, err)
	return v
}

func TestBuildBusinessTable(t *testing.T) {
	gen := NewDataGenerator(random.New(42), fixedNow)
	tbl, err := gen.Build(KindBusiness, BusinessTable, 50)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ID_Record", "Account", "Branch", "External ID", "Business Status", "Company Name",
		"Account Type", "Creation Date", "Modified Date", "Closed Date", "Business TAG", "Security Category",
	}, tbl.Columns())
	assert.Equal(t, 50, tbl.Len())

	ids := values(t, tbl, IDColumn)
	seen := make(map[int64]bool)
	for _, v := range ids {
		id := v.(int64)
		assert.GreaterOrEqual(t, id, int64(1000))
		assert.Less(t, id, int64(1050))
		seen[id] = true
	}
	assert.Len(t, seen, 50)

	branch, account, external := values(t, tbl, "Branch"), values(t, tbl, "Account"), values(t, tbl, "External ID")
	status := values(t, tbl, "Business Status")
	created, modified, closed := values(t, tbl, "Creation Date"), values(t, tbl, "Modified Date"), values(t, tbl, "Closed Date")
	today := random.Day(fixedNow())
	for i := 0; i < tbl.Len(); i++ {
		assert.Equal(t, branch[i].(string)+account[i].(string), external[i])
		assert.Regexp(t, `^\d[A-Z]{3}$`, branch[i])

		c, m := created[i].(time.Time), modified[i].(time.Time)
		assert.False(t, m.Before(c))
		assert.False(t, m.After(today))

		if status[i] == StatusActive {
			assert.Nil(t, closed[i])
		} else {
			require.IsType(t, time.Time{}, closed[i])
			assert.False(t, closed[i].(time.Time).Before(m))
		}
	}
}

func TestBuildEveryKind(t *testing.T) {
	gen := NewDataGenerator(random.New(3), fixedNow)
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			tbl, err := gen.Build(kind, string(kind), 20)
			require.NoError(t, err)
			assert.Equal(t, IDColumn, tbl.Columns()[0])
			assert.Equal(t, 20, tbl.Len())
		})
	}
	assert.Len(t, Kinds(), 15)

	_, err := gen.Build("payroll", "payroll", 5)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestBuildEmployeeTable(t *testing.T) {
	gen := NewDataGenerator(random.New(8), fixedNow)
	tbl, err := gen.Build(KindEmployee, EmployeeTable, 80)
	require.NoError(t, err)

	first, last := values(t, tbl, "Emp First Name"), values(t, tbl, "Emp Last Name")
	mFirst, mLast := values(t, tbl, "Manager First Name"), values(t, tbl, "Manager Last Name")
	email, phone := values(t, tbl, "Employee Email"), values(t, tbl, "Emp Phone Number")
	status, terminated := values(t, tbl, "Employee Status"), values(t, tbl, "Termination Date")
	for i := 0; i < tbl.Len(); i++ {
		assert.NotEqual(t, first[i], mFirst[i])
		assert.NotEqual(t, last[i], mLast[i])
		assert.Equal(t, last[i].(string)+"."+first[i].(string)+"@fakemail.com", email[i])
		assert.True(t, injector.CanonicalEmail.MatchString(email[i].(string)))
		p := phone[i].(string)
		assert.Equal(t, strings.Repeat(p[:1], 10), p)
		assert.Equal(t, status[i] == EmployeeTerminated, terminated[i] != nil)
	}
}

func TestPrefixedAndPaddedIDs(t *testing.T) {
	gen := NewDataGenerator(random.New(1), fixedNow)
	for _, v := range gen.PrefixedIDs(50, "T", 100000) {
		assert.Regexp(t, `^T\d{6}$`, v)
	}
	for _, v := range gen.Digits(50, 8) {
		assert.GreaterOrEqual(t, v.(int64), int64(10000000))
		assert.LessOrEqual(t, v.(int64), int64(99999999))
	}
	ids := make([]any, 100)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	padded := gen.PaddedAccounts(ids)
	assert.Equal(t, "007", padded[6])
	assert.Equal(t, "100", padded[99])
}

func TestDependencyGraph(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable("business")
	g.AddDependency("finance", "tax")
	g.AddDependency("finance", "legal")
	g.AddDependency("tax", "legal")
	g.AddDependency("legal", "business")

	order, err := g.BuildInsertionOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"business", "legal", "tax", "finance"}, order)

	cyclic := NewDependencyGraph()
	cyclic.AddDependency("a", "b")
	cyclic.AddDependency("b", "a")
	_, err = cyclic.BuildInsertionOrder()
	assert.ErrorContains(t, err, "circular dependency detected involving table")
}

func TestRunDefaultPlan(t *testing.T) {
	plan := DefaultPlan(100)
	plan.Seed = 42

	res, err := NewSeeder(WithClock(fixedNow)).Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, res.Tables, 16)

	names := make([]string, len(res.Tables))
	for i, tbl := range res.Tables {
		names[i] = tbl.Name
		assert.Equal(t, 100, tbl.Len(), tbl.Name)
	}
	assert.Equal(t, BusinessTable, names[0])
	assert.Equal(t, EmployeeSystemTable, names[15])

	legal := res.Table(LegalTable)
	assert.Equal(t, []string{"ID_Record", "Legal Account", "Bus External ID", "Legal Firm"}, legal.Columns()[:4])

	address := res.Table(AddressTable)
	assert.Equal(t, []string{"ID_Record", "Address ID", "Bus External ID", "Legal Account ID", "Address Street"}, address.Columns()[:5])

	finance := res.Table(FinanceTable)
	assert.Equal(t, []string{"ID_Record", "Finance Account", "Tax Account ID", "Legal Account ID", "Transaction ID"}, finance.Columns()[:5])

	taxAccounts := make(map[int64]bool)
	for _, v := range values(t, res.Table(TaxTable), "Tax Account") {
		taxAccounts[v.(int64)] = true
	}
	for _, v := range values(t, finance, "Tax Account ID") {
		assert.True(t, taxAccounts[v.(int64)])
	}

	blanks := 0
	for _, v := range values(t, res.Table(BusinessTable), "Company Name") {
		if v == "" {
			blanks++
		}
	}
	assert.Equal(t, 12, blanks)

	broken := 0
	for _, v := range values(t, res.Table(EmployeeTable), "Employee Email") {
		if !injector.CanonicalEmail.MatchString(v.(string)) {
			broken++
		}
	}
	assert.Equal(t, 15, broken)

	assert.Equal(t, []string{"Relationship ID", "Employee ID", "Legal Account"}, res.Table(EmployeeSystemTable).Columns())

	assert.NotEmpty(t, res.Manifest.RunID)
	assert.Equal(t, int64(42), res.Manifest.Seed)
	assert.Equal(t, 15, res.Manifest.Mutations)
	assert.Len(t, res.Manifest.Tables, 16)
}

func TestRunIsReproducible(t *testing.T) {
	run := func() *Result {
		plan := DefaultPlan(40)
		plan.Seed = 99
		res, err := NewSeeder(WithClock(fixedNow)).Run(context.Background(), plan)
		require.NoError(t, err)
		return res
	}
	first, second := run(), run()

	for i, tbl := range first.Tables {
		other := second.Tables[i]
		require.Equal(t, tbl.Columns(), other.Columns())
		for row := 0; row < tbl.Len(); row++ {
			assert.Equal(t, tbl.Row(row), other.Row(row), "%s row %d", tbl.Name, row)
		}
	}
	assert.NotEqual(t, first.Manifest.RunID, second.Manifest.RunID)
}

func TestLoadPlanAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`seed: 7
tables:
  - kind: business
    name: biz
    rows: 20
  - kind: legal
    name: leg
foreign_keys:
  - source: biz
    column: External ID
    targets:
      - table: leg
        position: 2
        prefix: "Bus "
associations:
  - name: links
    type: trait
    a: {table: biz, key: External ID}
    b: {table: leg, key: Legal Account}
    traits: [Owner, Signer]
mutations:
  - table: leg
    op: conditional_override
    column: Legal Firm
    percent: 100
    value: ""
    conditions:
      - field: Legal Status
        value: closed
`), 0644))

	plan, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultRows, plan.Rows)
	require.Len(t, plan.Mutations, 1)
	assert.Equal(t, OpConditionalOverride, plan.Mutations[0].Op)
	assert.Equal(t, 100.0, *plan.Mutations[0].Percent)

	res, err := NewSeeder(WithClock(fixedNow)).Run(context.Background(), plan)
	require.NoError(t, err)

	leg := res.Table("leg")
	assert.Equal(t, 100, leg.Len())
	assert.Equal(t, []string{"ID_Record", "Bus External ID", "Legal Account"}, leg.Columns()[:3])

	status, firm := values(t, leg, "Legal Status"), values(t, leg, "Legal Firm")
	for i := range status {
		assert.Equal(t, status[i] == StatusClosed, firm[i] == "", "row %d", i)
	}

	links := res.Table("links")
	assert.Equal(t, []string{"Relationship ID", "External ID", "Legal Account", "Relationship Trait"}, links.Columns())
	assert.Equal(t, 20, links.Len())
}

func TestPlanValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Plan)
	}{
		{"no tables", func(p *Plan) { p.Tables = nil }},
		{"duplicate name", func(p *Plan) { p.Tables[1].Name = p.Tables[0].Name }},
		{"unknown kind", func(p *Plan) { p.Tables[0].Kind = "payroll" }},
		{"unknown fk target", func(p *Plan) { p.ForeignKeys[0].Targets[0].Table = "nope" }},
		{"triple without third table", func(p *Plan) { p.Associations[0].Type = AssociationTriple }},
		{"unknown association type", func(p *Plan) { p.Associations[0].Type = "mesh" }},
		{"unknown mutation table", func(p *Plan) { p.Mutations[0].Table = "nope" }},
		{"unknown op", func(p *Plan) { p.Mutations[0].Op = "shuffle" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPlan(10)
			tt.mutate(p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidPlan)
		})
	}
	assert.NoError(t, DefaultPlan(10).Validate())
}

func TestRunFailures(t *testing.T) {
	plan := DefaultPlan(10)
	plan.Mutations = append(plan.Mutations, MutationSpec{Table: TaxTable, Op: OpOverride, Column: "Missing"})
	_, err := NewSeeder().Run(context.Background(), plan)
	assert.ErrorIs(t, err, table.ErrColumnNotFound)

	cyclic := DefaultPlan(10)
	cyclic.ForeignKeys = append(cyclic.ForeignKeys, ForeignKeySpec{
		Source: FinanceTable, Column: "Finance Account", Targets: []FKTarget{{Table: BusinessTable}},
	})
	_, err = NewSeeder().Run(context.Background(), cyclic)
	assert.ErrorContains(t, err, "circular dependency")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewSeeder().Run(ctx, DefaultPlan(10))
	assert.ErrorIs(t, err, context.Canceled)
}
