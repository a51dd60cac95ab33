// Package main is the catconnect command line: the API server, database
// migrations and a token minting helper for operators.
package main

import (
	"catconnect/internal/config"
	"catconnect/pkg/logger"
	"catconnect/pkg/storage/postgres"
	"context"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	db := cfg.Database
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           db.Username,
		Password:           db.Password,
		Host:               db.Host,
		Port:               db.Port,
		Database:           db.DatabaseName,
		ApplicationName:    "catconnect",
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
		MaxOpenConnections: db.MaxOpenConnections,
		MaxIdleConnections: db.MaxIdleConnections,
		SslMode:            db.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to postgres", zap.Error(err), zap.String("host", db.Host))
	}

	return pgsql, func() {
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres pool", zap.Error(err))
		}
	}
}

// loadConfig reads -c/--config ahead of cobra, which only parses flags once a
// subcommand runs. The cobra flag is declared too so it is not rejected.
func loadConfig(rootCmd *cobra.Command) *config.Config {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file path, empty reads the environment only")

	configPath := flag.String("c", "", "Config file path, empty reads the environment only")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	return cfg
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "catconnect",
		Short:        "Catanduanes Connect marketplace backend",
		SilenceUsage: true,
	}

	cfg := loadConfig(rootCmd)
	logger.Setup(cfg.Environment)

	ctx := context.Background()
	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		JWTCommand(cfg),
	)

	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
