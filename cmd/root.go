package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Rana718/mockdb/internal/config"
	"github.com/Rana718/mockdb/internal/logging"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════╗",
		"║   ███╗   ███╗ ██████╗  ██████╗██╗  ██╗██████╗ ██████╗ ║",
		"║   ████╗ ████║██╔═══██╗██╔════╝██║ ██╔╝██╔══██╗██╔══██╗║",
		"║   ██╔████╔██║██║   ██║██║     █████╔╝ ██║  ██║██████╔╝║",
		"║   ██║╚██╔╝██║██║   ██║██║     ██╔═██╗ ██║  ██║██╔══██╗║",
		"║   ██║ ╚═╝ ██║╚██████╔╝╚██████╗██║  ██╗██████╔╝██████╔╝║",
		"║   ╚═╝     ╚═╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝╚═════╝ ╚═════╝ ║",
		"║                                                      ║",
		"║      🌱 Linked mock datasets with realistic flaws 🌱   ║",
		"╚══════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                   ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "mockdb",
	Short: "Generate linked mock relational data with injected quality defects",
	Long: `
mockdb builds a set of related tables (business, legal, address, tax, finance,
employee and log data), links them with foreign keys and association tables,
then injects realistic data quality problems for training and testing.

It also checks, cleans and summarizes existing CSV or JSON tables and can push
generated data into a database.

Database Support:
- PostgreSQL
- MySQL
- SQLite`,
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("mockdb version %s\n", Version)
			return
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

// Execute runs the root command. An interrupt cancels the running command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("mockdb.config")
	}

	viper.SetEnvPrefix("MOCKDB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		color.Yellow("⚠️  Could not read config file %s: %v", cfgFile, err)
	}
}

// loadConfig loads and validates the configuration and builds the logger it describes.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
