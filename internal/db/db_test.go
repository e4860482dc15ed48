package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectPostgres(t *testing.T) {
	t.Run("missing DATABASE_URL is an error", func(t *testing.T) {
		_, err := ConnectPostgres(context.Background(), "", zap.NewNop())
		require.Error(t, err)
	})

	t.Run("malformed DATABASE_URL is an error", func(t *testing.T) {
		_, err := ConnectPostgres(context.Background(), "postgres://%zz", zap.NewNop())
		require.Error(t, err)
	})

	t.Run("valid DATABASE_URL should connect", func(t *testing.T) {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			t.Skip("DATABASE_URL not set, skipping integration test")
		}

		pool, err := ConnectPostgres(context.Background(), dsn, zap.NewNop())
		require.NoError(t, err)
		defer pool.Close()

		// schema init is idempotent
		require.NoError(t, InitSchema(context.Background(), pool))
	})
}
