package main

import (
	"log/slog"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/db"
	"github.com/spf13/cobra"
)

var rollbackSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, _, dbConn, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDB(logger, dbConn)

		if err := db.RunMigrations(dbConn); err != nil {
			return err
		}
		logger.Info("migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, _, dbConn, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDB(logger, dbConn)

		if err := db.RollbackMigrations(dbConn, rollbackSteps); err != nil {
			return err
		}
		logger.Info("migrations rolled back", slog.Int("steps", rollbackSteps))
		return nil
	},
}
