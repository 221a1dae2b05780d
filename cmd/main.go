package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/config"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/db"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

// @title Pemuda Berprestasi Championship API
// @version 1.0
// @description Taekwondo championship backend: brackets, medal placements, medal tallies and certificates.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const dbConnectTimeout = 5 * time.Second

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "pemuda-berprestasi",
	Short: "Taekwondo championship backend",
	Long: `Pemuda Berprestasi serves championship data over HTTP, resolves medal
placements from bracket results and keeps live medal tallies up to date.

Available subcommands:
  serve   - Run the HTTP API, WebSocket hub and tally scheduler
  migrate - Apply or roll back database migrations
  tally   - Print the medal tally of one or more competitions`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	migrateDownCmd.Flags().IntVar(&rollbackSteps, "steps", 1, "Number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tallyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger, nil
}

// bootstrap prepares the pieces every subcommand needs: logger, configuration
// and an open database connection.
func bootstrap() (*slog.Logger, *config.Config, *sqlx.DB, error) {
	logger, err := newLogger(logLevel)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, dbConnectTimeout)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("database connection established")

	return logger, cfg, dbConn, nil
}

func closeDB(logger *slog.Logger, dbConn *sqlx.DB) {
	if err := dbConn.Close(); err != nil {
		logger.Error("failed to close database connection", slog.Any("error", err))
		return
	}
	logger.Info("database connection closed")
}
