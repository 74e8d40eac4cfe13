package export

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Rana718/mockdb/internal/database"
	"github.com/Rana718/mockdb/internal/seeder"
	"github.com/Rana718/mockdb/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) ([]*table.Table, *seeder.Manifest) {
	t.Helper()
	business, err := table.FromColumns("business data",
		&table.Column{Name: "ID_Record", Values: []any{int64(1001), int64(1000)}},
		&table.Column{Name: "Company Name", Values: []any{"Acme Holdings", nil}},
	)
	require.NoError(t, err)
	legal, err := table.FromColumns("legal data",
		&table.Column{Name: "ID_Record", Values: []any{int64(1000)}},
		&table.Column{Name: "Legal Account", Values: []any{"000001"}},
	)
	require.NoError(t, err)

	tables := []*table.Table{business, legal}
	manifest := &seeder.Manifest{
		RunID:      "run-1",
		Seed:       7,
		StartedAt:  time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2024, time.June, 30, 12, 0, 1, 0, time.UTC),
	}
	for _, tbl := range tables {
		manifest.Tables = append(manifest.Tables, seeder.ManifestTable{Name: tbl.Name, Rows: tbl.Len(), Columns: tbl.Columns()})
	}
	return tables, manifest
}

func TestWriteFiles(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{FormatCSV, ".csv"},
		{FormatJSON, ".json"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()
			tables, manifest := fixture(t)

			require.NoError(t, Write(context.Background(), dir, tt.format, tables, manifest, nil))

			back, err := ReadManifest(filepath.Join(dir, ManifestFile))
			require.NoError(t, err)
			assert.Equal(t, "run-1", back.RunID)
			assert.Equal(t, int64(7), back.Seed)
			require.Len(t, back.Tables, 2)
			assert.Equal(t, "business data"+tt.ext, back.Tables[0].File)
			assert.Equal(t, "legal data"+tt.ext, back.Tables[1].File)

			loaded, err := table.LoadFile(filepath.Join(dir, back.Tables[0].File), table.ReadOptions{InferTypes: true})
			require.NoError(t, err)
			assert.Equal(t, "business data", loaded.Name)
			assert.Equal(t, []string{"ID_Record", "Company Name"}, loaded.Columns())
			assert.Equal(t, []any{int64(1001), "Acme Holdings"}, loaded.Row(0))
			assert.Nil(t, loaded.Row(1)[1])
		})
	}
}

func TestWriteSQLite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	tables, manifest := fixture(t)

	require.NoError(t, Write(ctx, dir, FormatSQLite, tables, manifest, nil))
	assert.Equal(t, SQLiteFile, manifest.Tables[0].File)

	db, err := database.Open(ctx, FormatSQLite, filepath.Join(dir, SQLiteFile))
	require.NoError(t, err)
	defer db.Close()

	legal, err := database.ReadTable(ctx, db, "legal data")
	require.NoError(t, err)
	assert.Equal(t, []any{"1000", "000001"}, legal.Row(0))
}

func TestWriteErrors(t *testing.T) {
	tables, manifest := fixture(t)

	err := Write(context.Background(), t.TempDir(), "parquet", tables, manifest, nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Write(ctx, t.TempDir(), FormatCSV, tables, manifest, nil)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = ReadManifest(filepath.Join(t.TempDir(), ManifestFile))
	assert.Error(t, err)
}
