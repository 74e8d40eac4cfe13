package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rana718/mockdb/internal/database"
	"github.com/Rana718/mockdb/internal/export"
	"github.com/Rana718/mockdb/internal/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push [dir]",
	Short: "Load a generated dataset into the configured database",
	Long: `
Load every table of a generated dataset directory into the database named by the
config (provider and the environment variable in url_env). Existing tables with
the same names are replaced. Files are taken from manifest.yaml when present,
otherwise every CSV and JSON file in the directory is loaded.

Examples:
  DATABASE_URL=postgres://localhost/mock mockdb push data_archive
  mockdb push out/ --batch 1000`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		dir := cfg.OutputPath
		if len(args) == 1 {
			dir = args[0]
		}
		if batch, _ := cmd.Flags().GetInt("batch"); batch > 0 {
			cfg.Batch = batch
		}

		files, err := datasetFiles(dir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			color.Yellow("⚠️  No tables found in %s", dir)
			return nil
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		db, err := database.Open(ctx, cfg.Database.Provider, dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		color.Cyan("🚀 Pushing %d table(s) to %s", len(files), db.Dialect().Name())
		w := database.NewWriter(db, cfg.Batch, log)
		total := 0
		for _, file := range files {
			t, err := table.LoadFile(file, table.ReadOptions{})
			if err != nil {
				return err
			}
			n, err := w.WriteTable(ctx, t)
			if err != nil {
				return err
			}
			total += n
			color.White("   • %-28s %6d rows", t.Name, n)
		}
		color.Green("✅ Pushed %d rows", total)
		return nil
	},
}

// datasetFiles lists the table files of a generated dataset. The manifest order is used
// when the directory has one.
func datasetFiles(dir string) ([]string, error) {
	manifest, err := export.ReadManifest(filepath.Join(dir, export.ManifestFile))
	if err == nil {
		var files []string
		for _, t := range manifest.Tables {
			if t.File == "" || t.File == export.SQLiteFile {
				continue
			}
			files = append(files, filepath.Join(dir, t.File))
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("manifest in %s lists no csv or json files", dir)
		}
		return files, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	csvFiles, err := table.FindFiles(dir, "", ".csv")
	if err != nil {
		return nil, err
	}
	jsonFiles, err := table.FindFiles(dir, "", ".json")
	if err != nil {
		return nil, err
	}
	return append(csvFiles, jsonFiles...), nil
}

func init() {
	rootCmd.AddCommand(pushCmd)

	pushCmd.Flags().Int("batch", 0, "rows per INSERT statement (default from config)")
}
