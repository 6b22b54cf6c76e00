//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-bankgen/internal/bank"
	"github.com/pgEdge/pgedge-bankgen/internal/db"
	"github.com/pgEdge/pgedge-bankgen/internal/export"
	"github.com/pgEdge/pgedge-bankgen/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate the dataset and load it into PostgreSQL",
	Long: `Generate the banking dataset, create the six tables in the target
database and copy every table into it. A run record is stored in the
bankgen_metadata table.

Loading refuses to overwrite an existing dataset unless --drop-existing
is given.

Example:
  pgedge-bankgen load --customers 1000 --connection "postgres://..."`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().String("connection", "",
		"PostgreSQL connection string")
	loadCmd.Flags().Bool("drop-existing", false,
		"drop existing dataset tables before loading")
	addWindowFlags(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if err := applyWindowFlags(cmd); err != nil {
		return err
	}
	if err := overrideString(cmd, "connection", &cfg.Connection); err != nil {
		return err
	}
	if err := overrideBool(cmd, "drop-existing", &cfg.Load.DropExisting); err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.ValidateLoad(); err != nil {
		return err
	}

	ds, genOpts, err := generateDataset()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	opts := db.LoadOptions{
		DropExisting: cfg.Load.DropExisting,
		Run: db.NewRunInfo(cfg.Generate.Seed, cfg.Generate.CustomerCount,
			genOpts.StartDate, genOpts.EndDate, cfg.Generate.Chronological),
	}

	if err := db.Load(ctx, pool, export.Tables(ds), opts); err != nil {
		return err
	}

	logging.Info().
		Str("run_id", opts.Run.ID.String()).
		Str("rows", describeCounts(ds)).
		Msg("Database load complete")

	return bank.Summarize(ds).Write(cmd.OutOrStdout())
}
