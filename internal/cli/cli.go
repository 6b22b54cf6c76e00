//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-bankgen.
package cli

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-bankgen/internal/bank"
	"github.com/pgEdge/pgedge-bankgen/internal/config"
	"github.com/pgEdge/pgedge-bankgen/internal/datagen"
	"github.com/pgEdge/pgedge-bankgen/internal/export"
	"github.com/pgEdge/pgedge-bankgen/internal/logging"
	"github.com/pgEdge/pgedge-bankgen/internal/profiles"
	"github.com/pgEdge/pgedge-bankgen/pkg/version"
)

var (
	// Global flags
	cfgFile   string
	logLevel  string
	seed      int64
	customers int

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-bankgen",
		Short: "Synthetic banking dataset generator",
		Long: `pgedge-bankgen generates a reproducible synthetic retail banking
dataset: branches, customers, accounts, transactions, loans and credit
cards. The same seed and settings always produce the same rows.

The dataset can be written as CSV files, uploaded to S3 compatible object
storage, or loaded straight into PostgreSQL.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-bankgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"random seed (default: 42)")
	rootCmd.PersistentFlags().IntVar(&customers, "customers", 0,
		"number of customers to generate (default: 10000)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(profilesCmd)
}

func initConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	flags := cmd.Flags()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("seed") {
		cfg.Generate.Seed = seed
	}
	if flags.Changed("customers") {
		cfg.Generate.CustomerCount = customers
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

// generateDataset builds the dataset described by the loaded configuration
// and returns it with the generator options it was built from.
func generateDataset() (*bank.Dataset, bank.Options, error) {
	opts, err := cfg.Generate.BankOptions()
	if err != nil {
		return nil, opts, err
	}

	gen, err := bank.NewGenerator(datagen.NewSource(cfg.Generate.Seed), opts)
	if err != nil {
		return nil, opts, err
	}

	logging.Debug().
		Int64("seed", cfg.Generate.Seed).
		Str("profile", cfg.Generate.HourlyProfile).
		Str("timezone", cfg.Generate.Timezone).
		Msg("Random source ready")

	return gen.Generate(), gen.Options(), nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Describe the generated tables",
	Long: `List the tables of a generated dataset in generation order with
their columns and PostgreSQL types.`,
	Run: func(cmd *cobra.Command, args []string) {
		for i, t := range export.Schema() {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s (primary key %s)\n", t.Name, t.PrimaryKey)
			for _, c := range t.Columns {
				cmd.Printf("  %-20s %s\n", c.Name, c.SQLType)
			}
		}
	},
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available hourly profiles",
	Long: `List the time-of-day profiles that decide at what hour of the day
transactions happen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println("Available hourly profiles:")
		cmd.Println()
		for _, name := range profiles.List() {
			p, err := profiles.Get(name, "UTC")
			if err != nil {
				return err
			}
			marker := ""
			if name == profiles.DefaultProfile {
				marker = " (default)"
			}
			cmd.Printf("  %-16s - %s%s\n", name, p.Description(), marker)
		}
		cmd.Println()
		cmd.Println("Profiles affect:")
		cmd.Println("  - The hour of day of every generated transaction")
		cmd.Println("  - Evaluated in the configured timezone (default UTC)")
		return nil
	},
}

// describeCounts formats table row counts for log output.
func describeCounts(ds *bank.Dataset) string {
	parts := make([]string, 0, len(bank.TableNames))
	for _, c := range ds.Counts() {
		parts = append(parts, fmt.Sprintf("%s=%d", c.Table, c.Rows))
	}
	return strings.Join(parts, " ")
}
