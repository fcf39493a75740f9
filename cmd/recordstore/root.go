/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/suparena/recordstore"
	"github.com/suparena/recordstore/config"
	"github.com/suparena/recordstore/datastore/memory"
	"github.com/suparena/recordstore/fixtures"
)

// app carries what the subcommands share once the root command has run.
type app struct {
	out     io.Writer
	errOut  io.Writer
	cfg     config.Config
	logger  zerolog.Logger
	catalog *recordstore.Catalog

	seedDir  string
	logLevel string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "recordstore",
		Short: "Query the dashboard's in-memory entity stores",
		Long: `recordstore seeds one in-memory store per entity type and runs a single
operation against it, printing the result as JSON.

Examples:
  recordstore entities
  recordstore get Patient patient-1
  recordstore query Patient --where name=mayer --sort -created_date
  recordstore query Agency --where star_rating:=4.5
  recordstore count Document --where status=pending

Configuration is read from .env, RECORDSTORE_* environment variables and the
YAML file named by RECORDSTORE_CONFIG.`,
		Version:           recordstore.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.seedDir, "seed-dir", "", "Directory of YAML seed files (default: embedded dataset)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newVersionCmd(a),
		newEntitiesCmd(a),
		newGetCmd(a),
		newQueryCmd(a),
		newCountCmd(a),
	)
	return root
}

// setup loads configuration and seeds the catalog. Flags override config.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.seedDir != "" {
		cfg.SeedDir = a.seedDir
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.errOut, NoColor: true}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	if cmd.Name() == "version" {
		return nil
	}

	var datasets []fixtures.Dataset
	if cfg.SeedDir != "" {
		datasets, err = fixtures.LoadDir(cfg.SeedDir)
	} else {
		datasets, err = fixtures.Default()
	}
	if err != nil {
		return err
	}

	a.catalog = recordstore.NewCatalog()
	err = fixtures.Seed(a.catalog, datasets,
		memory.WithLogger(a.logger),
		memory.WithLocale(cfg.Language()),
	)
	if err != nil {
		return err
	}

	a.logger.Debug().Int("entities", len(datasets)).Str("seed_dir", cfg.SeedDir).Msg("catalog seeded")
	return nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
