package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8083", cfg.Server.GRPCPort)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "./salon_inventory.sqlite", cfg.SQLite.Path)
	assert.Equal(t, 5*time.Second, cfg.SQLite.BusyTimeout)
	assert.Equal(t, 4, cfg.SQLite.MaxOpenConns)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("GRPC_PORT", "9000")
	t.Setenv("SQLITE_PATH", "/var/lib/ledger/db.sqlite")
	t.Setenv("SQLITE_BUSY_TIMEOUT_MS", "250")
	t.Setenv("SQLITE_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")

	cfg := LoadEnv()

	assert.Equal(t, "9000", cfg.Server.GRPCPort)
	assert.Equal(t, "/var/lib/ledger/db.sqlite", cfg.SQLite.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.SQLite.BusyTimeout)
	assert.Equal(t, 4, cfg.SQLite.MaxOpenConns)
	assert.True(t, cfg.Logger.DisableCaller)
}
