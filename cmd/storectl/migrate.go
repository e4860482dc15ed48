package main

import (
	"os"

	"prakruti/internal/db"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the Postgres schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dsn == "" {
				_ = godotenv.Load()
				dsn = os.Getenv("DATABASE_URL")
			}

			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			// ConnectPostgres applies the schema once connected.
			pool, err := db.ConnectPostgres(cmd.Context(), dsn, log)
			if err != nil {
				return err
			}
			pool.Close()
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "", "postgres connection string (defaults to DATABASE_URL)")
	return cmd
}
