package main

import (
	"event_manager/internal/config"
	"event_manager/internal/store"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// openDB loads the configuration and connects to its database; tests swap it
var openDB = func() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig() // Same environment as the server
	if err != nil {
		return nil, nil, err
	}
	config.SetupLogger(cfg.LogLevel, cfg.LogFormat)
	db, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "eventctl",
		Short:         "Operator commands for the event manager",
		Long:          `eventctl reads the same environment (or .env file) as the server and acts on its database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newCreateUserCmd())
	return root
}
