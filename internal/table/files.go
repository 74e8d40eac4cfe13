package table

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrMissingColumns = errors.New("missing columns")

// RequireColumns fails with ErrMissingColumns naming every column of names that t lacks.
func RequireColumns(t *Table, names ...string) error {
	var missing []string
	for _, name := range names {
		if !t.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w in table %q: %q", ErrMissingColumns, t.Name, missing)
	}
	return nil
}

// FindColumns returns the columns of t whose name contains partial, ignoring case, in
// column order.
func FindColumns(t *Table, partial string) []string {
	var matches []string
	for _, name := range t.Columns() {
		if strings.Contains(strings.ToLower(name), strings.ToLower(partial)) {
			matches = append(matches, name)
		}
	}
	return matches
}

// FindFiles lists files in dir whose base name contains partialName and ends with ext.
func FindFiles(dir, partialName, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext != "" && strings.ToLower(filepath.Ext(name)) != ext {
			continue
		}
		if !strings.Contains(strings.ToLower(name), strings.ToLower(partialName)) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

// LoadFile reads a .csv or .json file. The table is named after the file without its extension.
func LoadFile(path string, opts ReadOptions) (*Table, error) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path, name, opts)
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return ReadJSON(f, name)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}
