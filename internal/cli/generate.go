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
	"github.com/pgEdge/pgedge-bankgen/internal/export"
	"github.com/pgEdge/pgedge-bankgen/internal/logging"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and write it as CSV files",
	Long: `Generate the banking dataset and write one CSV file per table to the
output directory. With --upload the files are also copied to the bucket
configured in the upload section of the config file.

Example:
  pgedge-bankgen generate --seed 42 --customers 10000 --output banking_data`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("output", "",
		"output directory for CSV files (default: banking_data)")
	generateCmd.Flags().Bool("upload", false,
		"upload the CSV files to object storage")
	addWindowFlags(generateCmd)
}

// addWindowFlags registers the flags shared by every command that
// generates a dataset. Each command owns its flag set, so values given to
// one command never reach another.
func addWindowFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("start-date", "",
		"first day of the transaction window (YYYY-MM-DD)")
	flags.String("end-date", "",
		"last day of the transaction window (default: 2025-12-31)")
	flags.String("as-of", "",
		"date treated as today (default: end date)")
	flags.Int("years", 0,
		"length of the transaction window in years when no start date is set (default: 5)")
	flags.Bool("chronological", false,
		"apply transactions to balances in timestamp order")
	flags.Bool("clamp-to-window", false,
		"start transaction histories no earlier than the start date")
	flags.String("profile", "",
		"hourly profile (retail-banking, business-hours, round-the-clock, evening-spend, global-cards)")
	flags.String("timezone", "",
		"timezone the hourly profile is evaluated in (default: UTC)")
	flags.Bool("day-of-week", false,
		"weight transaction days by the profile's activity on each weekday")
}

// applyWindowFlags overrides the generation settings with the flags given
// on the command line.
func applyWindowFlags(cmd *cobra.Command) error {
	gen := &cfg.Generate

	strs := []struct {
		flag string
		dst  *string
	}{
		{"start-date", &gen.StartDate},
		{"end-date", &gen.EndDate},
		{"as-of", &gen.AsOf},
		{"profile", &gen.HourlyProfile},
		{"timezone", &gen.Timezone},
	}
	for _, f := range strs {
		if err := overrideString(cmd, f.flag, f.dst); err != nil {
			return err
		}
	}

	bools := []struct {
		flag string
		dst  *bool
	}{
		{"chronological", &gen.Chronological},
		{"clamp-to-window", &gen.ClampToWindow},
		{"day-of-week", &gen.DayOfWeek},
	}
	for _, f := range bools {
		if err := overrideBool(cmd, f.flag, f.dst); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("years") {
		years, err := cmd.Flags().GetInt("years")
		if err != nil {
			return err
		}
		gen.TransactionYears = years
	}
	return nil
}

func overrideString(cmd *cobra.Command, flag string, dst *string) error {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	v, err := cmd.Flags().GetString(flag)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func overrideBool(cmd *cobra.Command, flag string, dst *bool) error {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	v, err := cmd.Flags().GetBool(flag)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if err := applyWindowFlags(cmd); err != nil {
		return err
	}
	if err := overrideString(cmd, "output", &cfg.Output.Dir); err != nil {
		return err
	}
	upload, err := cmd.Flags().GetBool("upload")
	if err != nil {
		return err
	}

	// Validate configuration
	if upload {
		if err := cfg.ValidateUpload(); err != nil {
			return err
		}
	} else if err := cfg.Validate(); err != nil {
		return err
	}

	ds, _, err := generateDataset()
	if err != nil {
		return err
	}

	files, err := export.WriteDir(cfg.Output.Dir, export.Tables(ds))
	if err != nil {
		return err
	}

	logging.Info().
		Str("dir", cfg.Output.Dir).
		Str("rows", describeCounts(ds)).
		Msg("Dataset written")

	if upload {
		store, err := export.NewMinioObjStore(export.StoreConfig{
			Endpoint:  cfg.Upload.Endpoint,
			AccessKey: cfg.Upload.AccessKey,
			SecretKey: cfg.Upload.SecretKey,
			UseSSL:    cfg.Upload.UseSSL,
		})
		if err != nil {
			return err
		}

		objects, err := export.Upload(cmd.Context(), store, cfg.Upload.Bucket, cfg.Upload.Prefix, files)
		if err != nil {
			return fmt.Errorf("upload failed after %d objects: %w", len(objects), err)
		}

		logging.Info().
			Str("bucket", cfg.Upload.Bucket).
			Int("objects", len(objects)).
			Msg("Upload complete")
	}

	return bank.Summarize(ds).Write(cmd.OutOrStdout())
}
