// Package export writes generated tables and their run manifest to an output directory.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Rana718/mockdb/internal/database"
	"github.com/Rana718/mockdb/internal/seeder"
	"github.com/Rana718/mockdb/internal/table"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"

	ManifestFile = "manifest.yaml"
	SQLiteFile   = "mockdb.db"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Formats lists the accepted values for the format setting.
var Formats = []string{FormatCSV, FormatJSON, FormatSQLite}

// Write stores tables in dir using the given format and then writes manifest.yaml next to
// them. File names are recorded in the manifest entry of each table.
func Write(ctx context.Context, dir, format string, tables []*table.Table, manifest *seeder.Manifest, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	var (
		files map[string]string
		err   error
	)
	switch format {
	case FormatCSV:
		files, err = writeFiles(ctx, dir, ".csv", tables, table.SaveCSV)
	case FormatJSON:
		files, err = writeFiles(ctx, dir, ".json", tables, table.SaveJSON)
	case FormatSQLite:
		files, err = writeSQLite(ctx, dir, tables, log)
	default:
		return fmt.Errorf("%w: %s (supported: %v)", ErrUnsupportedFormat, format, Formats)
	}
	if err != nil {
		return err
	}

	if manifest == nil {
		return nil
	}
	for i := range manifest.Tables {
		manifest.Tables[i].File = files[manifest.Tables[i].Name]
	}
	return WriteManifest(filepath.Join(dir, ManifestFile), manifest)
}

// writeFiles saves every table concurrently into its own file named after the table.
func writeFiles(ctx context.Context, dir, ext string, tables []*table.Table, save func(string, *table.Table) error) (map[string]string, error) {
	type fileResult struct {
		name string
		file string
		err  error
	}

	results := make(chan fileResult, len(tables))
	var wg sync.WaitGroup

	for _, t := range tables {
		wg.Add(1)
		go func(t *table.Table) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				results <- fileResult{name: t.Name, err: err}
				return
			}
			file := t.Name + ext
			results <- fileResult{t.Name, file, save(filepath.Join(dir, file), t)}
		}(t)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	files := make(map[string]string, len(tables))
	var errs []error
	for result := range results {
		if result.err != nil {
			errs = append(errs, fmt.Errorf("failed to write %s: %w", result.name, result.err))
			continue
		}
		files[result.name] = result.file
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return files, nil
}

func writeSQLite(ctx context.Context, dir string, tables []*table.Table, log *zap.Logger) (map[string]string, error) {
	path := filepath.Join(dir, SQLiteFile)
	db, err := database.Open(ctx, FormatSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQLite database: %w", err)
	}
	defer db.Close()

	w := database.NewWriter(db, database.DefaultBatchSize, log)
	files := make(map[string]string, len(tables))
	for _, t := range tables {
		if _, err := w.WriteTable(ctx, t); err != nil {
			return nil, err
		}
		files[t.Name] = SQLiteFile
	}
	return files, nil
}

func WriteManifest(path string, manifest *seeder.Manifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func ReadManifest(path string) (*seeder.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var manifest seeder.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &manifest, nil
}
