package linker

import (
	"fmt"
	"testing"

	"github.com/Rana718/mockdb/internal/random"
	"github.com/Rana718/mockdb/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func keyed(t *testing.T, name, key string, n int, prefix string) *table.Table {
	t.Helper()
	ids := make([]any, n)
	keys := make([]any, n)
	for i := 0; i < n; i++ {
		ids[i] = int64(1000 + i)
		keys[i] = fmt.Sprintf("%s%03d", prefix, i)
	}
	tbl, err := table.FromColumns(name,
		&table.Column{Name: "ID_Record", Values: ids},
		&table.Column{Name: key, Values: keys},
		&table.Column{Name: "Status", Values: make([]any, n)},
	)
	require.NoError(t, err)
	return tbl
}

func valueSet(t *testing.T, tbl *table.Table, col string) map[string]bool {
	t.Helper()
	values, err := tbl.Values(col)
	require.NoError(t, err)
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[table.Format(v)] = true
	}
	return set
}

func TestAddForeignKeyReferentialInclusion(t *testing.T) {
	l := New(random.New(7), zap.NewNop())
	source := keyed(t, "business", "External ID", 20, "B")
	target := keyed(t, "legal", "Legal Account", 55, "L")

	out, err := l.AddForeignKey(source, target, ForeignKey{Column: "External ID", Position: 3, Prefix: "Bus "})
	require.NoError(t, err)
	assert.Same(t, target, out)

	assert.Equal(t, []string{"ID_Record", "Legal Account", "Bus External ID", "Status"}, target.Columns())
	assert.Equal(t, 55, target.Len())

	allowed := valueSet(t, source, "External ID")
	fk, err := target.Values("Bus External ID")
	require.NoError(t, err)
	for i, v := range fk {
		assert.True(t, allowed[table.Format(v)], "row %d holds %v", i, v)
	}

	assert.Equal(t, []string{"ID_Record", "External ID", "Status"}, source.Columns())
}

func TestAddForeignKeyReplacesExistingColumn(t *testing.T) {
	l := New(random.New(3), nil)
	source := keyed(t, "legal", "Legal Account", 10, "L")
	target := keyed(t, "tax", "Tax Account", 10, "T")

	fk := ForeignKey{Column: "Legal Account", Position: 2, Suffix: " ID"}
	_, err := l.AddForeignKey(source, target, fk)
	require.NoError(t, err)
	_, err = l.AddForeignKey(source, target, ForeignKey{Column: "Legal Account", Position: 4, Suffix: " ID"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ID_Record", "Tax Account", "Status", "Legal Account ID"}, target.Columns())
}

func TestAddForeignKeyValidation(t *testing.T) {
	l := New(random.New(1), nil)
	source := keyed(t, "business", "External ID", 5, "B")
	target := keyed(t, "legal", "Legal Account", 5, "L")
	before := target.Columns()

	_, err := l.AddForeignKey(source, target, ForeignKey{Column: "Missing", Position: 2})
	assert.ErrorIs(t, err, table.ErrColumnNotFound)

	_, err = l.AddForeignKey(source, target, ForeignKey{Column: "External ID", Position: 9})
	assert.ErrorIs(t, err, table.ErrInvalidPosition)

	empty := table.New("empty")
	require.NoError(t, empty.Append("External ID", []any{}))
	_, err = l.AddForeignKey(empty, target, ForeignKey{Column: "External ID", Position: 2})
	assert.ErrorIs(t, err, ErrEmptyKeyColumn)

	assert.Equal(t, before, target.Columns())
}

func TestBuildPairwise(t *testing.T) {
	l := New(random.New(11), nil)
	emp := keyed(t, "employee", "Employee ID", 40, "E")
	legal := keyed(t, "legal", "Legal Account", 12, "L")

	rel, err := l.BuildPairwise("Employee System", emp, "Employee ID", legal, "Legal Account")
	require.NoError(t, err)

	assert.Equal(t, []string{"Relationship ID", "Employee ID", "Legal Account"}, rel.Columns())
	assert.Equal(t, 40, rel.Len())

	ids, _ := rel.Values("Relationship ID")
	seen := make(map[int64]bool)
	for _, v := range ids {
		id := v.(int64)
		assert.GreaterOrEqual(t, id, int64(1))
		assert.LessOrEqual(t, id, int64(40))
		assert.False(t, seen[id], "duplicate relationship id %d", id)
		seen[id] = true
	}

	empKeys, _ := emp.Values("Employee ID")
	relKeys, _ := rel.Values("Employee ID")
	assert.Equal(t, empKeys, relKeys)

	allowed := valueSet(t, legal, "Legal Account")
	drawn, _ := rel.Values("Legal Account")
	for _, v := range drawn {
		assert.True(t, allowed[table.Format(v)])
	}

	_, err = l.BuildPairwise("bad", emp, "Nope", legal, "Legal Account")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestBuildTripleDrawsIDsWithReplacement(t *testing.T) {
	l := New(random.New(5), nil)
	a := keyed(t, "a", "A Key", 200, "A")
	b := keyed(t, "b", "B Key", 10, "B")
	c := keyed(t, "c", "C Key", 10, "C")

	rel, err := l.BuildTriple("abc", a, "A Key", b, "B Key", c, "C Key")
	require.NoError(t, err)
	assert.Equal(t, []string{"Relationship ID", "A Key", "B Key", "C Key"}, rel.Columns())

	ids, _ := rel.Values("Relationship ID")
	distinct := make(map[int64]bool)
	for _, v := range ids {
		id := v.(int64)
		assert.GreaterOrEqual(t, id, int64(1))
		assert.LessOrEqual(t, id, int64(200))
		distinct[id] = true
	}
	// 200 draws from 200 values repeat with overwhelming probability.
	assert.Less(t, len(distinct), 200)
}

func TestBuildPairwiseWithTrait(t *testing.T) {
	l := New(random.New(9), nil)
	l.RelationshipIDName = "Link ID"
	a := keyed(t, "a", "A Key", 30, "A")
	b := keyed(t, "b", "B Key", 5, "B")
	traits := []any{"Owner", "Signer", "Viewer"}

	rel, err := l.BuildPairwiseWithTrait("ab", a, "A Key", b, "B Key", traits)
	require.NoError(t, err)
	assert.Equal(t, []string{"Link ID", "A Key", "B Key", TraitColumn}, rel.Columns())

	got, _ := rel.Values(TraitColumn)
	for _, v := range got {
		assert.Contains(t, traits, v)
	}

	_, err = l.BuildPairwiseWithTrait("ab", a, "A Key", b, "B Key", nil)
	assert.ErrorIs(t, err, ErrEmptyKeyColumn)
}

func TestRelationshipKeyNameCollisions(t *testing.T) {
	l := New(random.New(13), nil)
	business := keyed(t, "business", "External ID", 25, "B")
	legal := keyed(t, "legal", "Legal Account", 8, "L")
	tax := keyed(t, "tax", "Tax Account", 6, "T")

	tests := []struct {
		name    string
		build   func() (*table.Table, error)
		columns []string
	}{
		{
			name: "pairwise on record ids",
			build: func() (*table.Table, error) {
				return l.BuildPairwise("rel", business, "ID_Record", legal, "ID_Record")
			},
			columns: []string{"Relationship ID", "ID_Record", "legal ID_Record"},
		},
		{
			name: "triple on record ids",
			build: func() (*table.Table, error) {
				return l.BuildTriple("rel", business, "ID_Record", legal, "ID_Record", tax, "ID_Record")
			},
			columns: []string{"Relationship ID", "ID_Record", "legal ID_Record", "tax ID_Record"},
		},
		{
			name: "triple with b and c from one table",
			build: func() (*table.Table, error) {
				return l.BuildTriple("rel", business, "ID_Record", legal, "ID_Record", legal, "ID_Record")
			},
			columns: []string{"Relationship ID", "ID_Record", "legal ID_Record", "legal ID_Record 2"},
		},
		{
			name: "key named like the relationship id",
			build: func() (*table.Table, error) {
				a, err := table.FromColumns("links", &table.Column{Name: DefaultRelationshipIDName, Values: []any{"x", "y"}})
				require.NoError(t, err)
				return l.BuildPairwise("rel", a, DefaultRelationshipIDName, legal, "Legal Account")
			},
			columns: []string{"Relationship ID", "links Relationship ID", "Legal Account"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.columns, rel.Columns())

			if !rel.Has("legal ID_Record") {
				return
			}
			drawn, _ := rel.Values("legal ID_Record")
			allowed := valueSet(t, legal, "ID_Record")
			for _, v := range drawn {
				assert.True(t, allowed[table.Format(v)])
			}
		})
	}

	rel, err := l.BuildPairwise("rel", business, "ID_Record", legal, "ID_Record")
	require.NoError(t, err)
	own, _ := rel.Values("ID_Record")
	ids, _ := business.Values("ID_Record")
	assert.Equal(t, ids, own)
}
