package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/Rana718/mockdb/internal/config"
	"github.com/Rana718/mockdb/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const planFileName = "mockdb.plan.yaml"

var (
	initRows   int
	initNoPlan bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file and an editable generation plan",
	Long: `
Create ` + config.FileName + ` with default settings and ` + planFileName + `, the standard
generation plan written out so tables, links and injected defects can be edited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(config.FileName); err != nil {
			if errors.Is(err, config.ErrAlreadyInitialized) {
				color.Yellow("⚠️  %s already exists, leaving it unchanged", config.FileName)
			} else {
				return err
			}
		} else {
			color.Green("✅ Created %s", config.FileName)
		}

		if initNoPlan {
			return nil
		}
		if _, err := os.Stat(planFileName); err == nil {
			color.Yellow("⚠️  %s already exists, leaving it unchanged", planFileName)
			return nil
		}
		if err := seeder.DefaultPlan(initRows).Save(planFileName); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
		color.Green("✅ Created %s", planFileName)
		color.Cyan("💡 Set \"plan_file\": %q in %s to generate from it", planFileName, config.FileName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().IntVar(&initRows, "rows", seeder.DefaultRows, "rows per table in the written plan")
	initCmd.Flags().BoolVar(&initNoPlan, "no-plan", false, "only write the config file")
}
