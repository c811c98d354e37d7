package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.True(t, cfg.DBEnsureSchema)
	assert.False(t, cfg.DBRecreate)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("POSTGRES_DSN", "postgres://a:b@db:5432/x")
	t.Setenv("DB_RECREATE", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres://a:b@db:5432/x", cfg.PostgresDSN)
	assert.True(t, cfg.DBRecreate)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	ok := Config{StoreDriver: DriverPostgres, PostgresDSN: "postgres://x", ShutdownTimeout: time.Second}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.StoreDriver = "mongo"
	assert.Error(t, bad.Validate())

	noDSN := ok
	noDSN.PostgresDSN = ""
	assert.Error(t, noDSN.Validate())

	mem := Config{StoreDriver: DriverMemory, ShutdownTimeout: time.Second}
	assert.NoError(t, mem.Validate())
}
