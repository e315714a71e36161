package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_NAME", "DB_PASSWORD", "DB_PATH", "LOG_LEVEL", "CREDIT_SHARD_SIZE"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 500, cfg.Engine.ShardSize)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
database:
  driver: mysql
  host: db.local
  port: "3306"
  user: crm
  name: credit
engine:
  shard_size: 50
log:
  level: debug
`), 0o644))

	t.Setenv("DB_HOST", "override.local")
	t.Setenv("CREDIT_SHARD_SIZE", "10")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "override.local", cfg.Database.Host)
	assert.Equal(t, 10, cfg.Engine.ShardSize)
	assert.Equal(t, "debug", cfg.Log.Level)

	dsn, err := cfg.Database.DSN()
	require.NoError(t, err)
	assert.Equal(t, "crm:@tcp(override.local:3306)/credit?charset=utf8mb4&parseTime=True&loc=UTC", dsn)
}

func TestInvalidShardSizeEnvIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREDIT_SHARD_SIZE", "lots")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Engine.ShardSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)

	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "")
	t.Setenv("LOG_LEVEL", "chatty")
	_, err = Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	pg := DatabaseConfig{Driver: "postgres", Host: "h", Port: "5432", User: "u", Name: "n", Password: "p"}
	dsn, err := pg.DSN()
	require.NoError(t, err)
	assert.Equal(t, "host=h port=5432 user=u dbname=n sslmode=disable password=p", dsn)

	_, err = DatabaseConfig{Driver: "sqlite3"}.DSN()
	assert.Error(t, err)

	dsn, err = DatabaseConfig{Driver: "sqlite3", Path: "credit.db"}.DSN()
	require.NoError(t, err)
	assert.Equal(t, "credit.db", dsn)
}

func TestApplyLogLevel(t *testing.T) {
	prev := log.Level()
	t.Cleanup(func() { log.SetLevel(prev) })

	LogConfig{Level: "warn"}.ApplyLogLevel()
	assert.Equal(t, log.WARN, log.Level())
}
