package main

import (
	"context"

	"ClinicAdmin/config"
	"ClinicAdmin/database"
	"ClinicAdmin/logger"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the clinic schema and its triggers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := database.InitDB(context.Background(), cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.Migrate(db, cfg.DBDriver, log); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
}
