package cmd

import (
	"fmt"

	"github.com/Rana718/mockdb/internal/config"
	"github.com/Rana718/mockdb/internal/export"
	"github.com/Rana718/mockdb/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the linked mock dataset",
	Long: `
Generate every table of the plan, link them with foreign keys and association
tables, inject data quality defects and write the result to the output directory.

Without a plan file the standard dataset is generated: business, legal, address,
employee, tax and finance data, nine log tables and the Employee System association.

Examples:
  mockdb generate
  mockdb generate --rows 500 --seed 42
  mockdb generate --plan mockdb.plan.yaml --format sqlite --out out/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		plan, err := buildPlan(cfg, cmd.Flags().Changed("rows"))
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		s := seeder.NewSeeder(seeder.WithLogger(log))
		result, err := s.Run(ctx, plan)
		if err != nil {
			return err
		}

		if err := cfg.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}
		if err := export.Write(ctx, cfg.OutputPath, cfg.Format, result.Tables, &result.Manifest, log); err != nil {
			return err
		}

		for _, t := range result.Manifest.Tables {
			color.White("   • %-28s %6d rows  %s", t.Name, t.Rows, t.File)
		}
		color.Green("✅ Wrote %d tables to %s (run %s, seed %d)",
			len(result.Tables), cfg.OutputPath, result.Manifest.RunID, result.Manifest.Seed)
		return nil
	},
}

// buildPlan loads the plan file or falls back to the standard plan, then applies the
// configured seed and row counts. The configured row count replaces the plan's only
// when no plan file is used or --rows was given.
func buildPlan(cfg *config.Config, rowsFlag bool) (*seeder.Plan, error) {
	var plan *seeder.Plan
	if cfg.PlanFile != "" {
		p, err := seeder.LoadPlan(cfg.PlanFile)
		if err != nil {
			return nil, err
		}
		plan = p
		if rowsFlag {
			plan.Rows = cfg.Rows
		}
	} else {
		plan = seeder.DefaultPlan(cfg.Rows)
	}

	if cfg.Seed != 0 {
		plan.Seed = cfg.Seed
	}
	for i := range plan.Tables {
		if n, ok := cfg.TableRows(plan.Tables[i].Name); ok {
			plan.Tables[i].Rows = n
		}
	}
	return plan, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("rows", 0, "rows per table (default 100)")
	generateCmd.Flags().Int64("seed", 0, "random seed (0 uses the clock)")
	generateCmd.Flags().String("plan", "", "YAML generation plan")
	generateCmd.Flags().String("format", "", "output format: csv, json or sqlite (default csv)")
	generateCmd.Flags().String("out", "", "output directory (default data_archive)")

	viper.BindPFlag("rows", generateCmd.Flags().Lookup("rows"))
	viper.BindPFlag("seed", generateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("plan_file", generateCmd.Flags().Lookup("plan"))
	viper.BindPFlag("format", generateCmd.Flags().Lookup("format"))
	viper.BindPFlag("output_path", generateCmd.Flags().Lookup("out"))
}
