package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, uint64(15), cfg.Mongo.MaxPoolSize)
	assert.False(t, cfg.Mongo.SyncIndexes)
	assert.Equal(t, 168*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, []string{defaultCORSOrigin}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "Asia/Karachi", cfg.Shift.Timezone)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/activity")
	t.Setenv("CORS_ORIGIN", "http://localhost:3000, https://admin.example.com,")
	t.Setenv("SYNC_INDEXES", "true")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.Mongo.SyncIndexes)
	assert.Equal(t, []string{"http://localhost:3000", "https://admin.example.com"}, cfg.HTTP.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("STORE_DRIVER", "memory")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("STORE_DRIVER", "sqlite")
		_, err := Load()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		_, err := Load()
		assert.ErrorContains(t, err, "PORT")
	})

	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "debug"}}
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.App.LogLevel = "loud"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
