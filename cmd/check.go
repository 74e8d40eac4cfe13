package cmd

import (
	"fmt"
	"os"

	"github.com/Rana718/mockdb/internal/database"
	"github.com/Rana718/mockdb/internal/integrity"
	"github.com/Rana718/mockdb/internal/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file|dir]",
	Short: "Run data integrity checks on a table",
	Long: `
Check a CSV or JSON table for id thresholds, active to closed ratios, nulls,
duplicate rows, mixed value types and malformed emails, street addresses, zip
codes, IP addresses and domain names.

--require fails the check when a column is missing and --require-like when no
column name contains the given text.

A directory argument checks every file in it whose name contains --match.
--from-db reads the table from the configured database instead of a file.

Examples:
  mockdb check "data_archive/business data.csv" --id ID_Record --status "Business Status"
  mockdb check data_archive --match employee --email "Employee Email" --list
  mockdb check --from-db "address data" --zip "Zip Code" --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		fromDB, _ := flags.GetString("from-db")
		if (len(args) == 0) == (fromDB == "") {
			return fmt.Errorf("give either a file or directory argument or --from-db")
		}

		spec := integrity.DefaultAuditSpec()
		spec.IDColumn, _ = flags.GetString("id")
		spec.StatusColumn, _ = flags.GetString("status")
		spec.EmailColumn, _ = flags.GetString("email")
		spec.StreetColumn, _ = flags.GetString("street")
		spec.ZipColumn, _ = flags.GetString("zip")
		spec.IPColumn, _ = flags.GetString("ip")
		spec.DomainColumn, _ = flags.GetString("domain")
		spec.NullThreshold, _ = flags.GetInt("null-threshold")
		output, _ := flags.GetString("output")
		list, _ := flags.GetBool("list")
		required, _ := flags.GetStringArray("require")
		partials, _ := flags.GetStringArray("require-like")

		tables, err := checkTargets(cmd, args, fromDB)
		if err != nil {
			return err
		}

		warnings := 0
		for _, t := range tables {
			if err := precheckColumns(t, required, partials); err != nil {
				return err
			}
			report, err := integrity.Audit(t, spec)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", t.Name, err)
			}
			if err := report.Render(os.Stdout, output, list); err != nil {
				return err
			}
			warnings += report.Warnings()
		}

		if strict, _ := flags.GetBool("strict"); strict && warnings > 0 {
			return fmt.Errorf("%d integrity warning(s)", warnings)
		}
		return nil
	},
}

func precheckColumns(t *table.Table, required, partials []string) error {
	if err := table.RequireColumns(t, required...); err != nil {
		return err
	}
	for _, partial := range partials {
		if len(table.FindColumns(t, partial)) == 0 {
			return fmt.Errorf("no column in table %q contains %q", t.Name, partial)
		}
	}
	return nil
}

func checkTargets(cmd *cobra.Command, args []string, fromDB string) ([]*table.Table, error) {
	if fromDB != "" {
		cfg, log, err := loadConfig()
		if err != nil {
			return nil, err
		}
		defer log.Sync()

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return nil, err
		}
		db, err := database.Open(cmd.Context(), cfg.Database.Provider, dbURL)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		t, err := database.ReadTable(cmd.Context(), db, fromDB)
		if err != nil {
			return nil, err
		}
		return []*table.Table{t}, nil
	}

	opts := table.ReadOptions{InferTypes: true}
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		t, err := table.LoadFile(path, opts)
		if err != nil {
			return nil, err
		}
		return []*table.Table{t}, nil
	}

	match, _ := cmd.Flags().GetString("match")
	ext, _ := cmd.Flags().GetString("ext")
	files, err := table.FindFiles(path, match, ext)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		color.Yellow("⚠️  No %s files matching %q in %s", ext, match, path)
		return nil, nil
	}

	tables := make([]*table.Table, 0, len(files))
	for _, file := range files {
		t, err := table.LoadFile(file, opts)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("id", "", "id column for count thresholds")
	checkCmd.Flags().String("status", "", "status column for active and closed ratios (needs --id)")
	checkCmd.Flags().String("email", "", "email column to validate")
	checkCmd.Flags().String("street", "", "street address column to validate")
	checkCmd.Flags().String("zip", "", "zip code column to validate")
	checkCmd.Flags().String("ip", "", "IP address column to validate")
	checkCmd.Flags().String("domain", "", "domain name column to validate")
	checkCmd.Flags().Int("null-threshold", integrity.DefaultNullThreshold, "warn when a column has more nulls than this")
	checkCmd.Flags().Bool("list", false, "list invalid values")
	checkCmd.Flags().StringP("output", "o", integrity.OutputText, "output format: text, json or yaml")
	checkCmd.Flags().String("from-db", "", "read the named table from the configured database")
	checkCmd.Flags().String("match", "", "with a directory argument, only files whose name contains this")
	checkCmd.Flags().String("ext", ".csv", "with a directory argument, only files with this extension")
	checkCmd.Flags().StringArray("require", nil, "fail unless the table has this column")
	checkCmd.Flags().StringArray("require-like", nil, "fail unless a column name contains this text")
	checkCmd.Flags().Bool("strict", false, "exit with an error when any check warns")
}
