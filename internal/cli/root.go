// Package cli implements the learnhub command-line interface: the learner
// commands (courses, enroll, lessons, complete) and the admin console
// (content CRUD, statistics, export). It is a thin presentation layer over
// internal/services; no query logic lives here.
package cli

import (
	"os"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"learnhub/internal/config"
	"learnhub/internal/logging"
	"learnhub/internal/repository"
)

var (
	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags variables
	cfgFile  string
	logLevel string
)

// RootCmd is the top-level learnhub command.
var RootCmd = &cobra.Command{
	Use:          "learnhub",
	Short:        "A single-user e-learning store: browse, enroll, read, track",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the configuration file. (Env: LEARNHUB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: LEARNHUB_LOG_LEVEL)")
}

// initializeConfig loads the configuration and wires up logging.
func initializeConfig() error {
	// The config path itself cannot come from the config file.
	if envPath := os.Getenv("LEARNHUB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logging.Init(cfg.Logging.Level)
	goose.SetLogger(logging.Log)

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore opens the SQLite store, brings the schema up to date and seeds
// the starter catalog on a first launch. Every command that touches the
// store goes through here, so initialization stays idempotent across runs.
func openStore() (*repository.Repository, error) {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return nil, err
	}
	if err := repo.Migrate(); err != nil {
		repo.Close()
		return nil, err
	}
	if _, err := repo.SeedIfEmpty(); err != nil {
		repo.Close()
		return nil, err
	}
	return repo, nil
}
