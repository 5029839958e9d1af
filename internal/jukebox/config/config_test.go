package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// clearEnv blanks every variable Load honours so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	for _, name := range []string{
		"PORT", "SERVER_PORT", "DATABASE_URL",
		"JUKEBOX_SERVER_HTTP_PORT", "JUKEBOX_SERVER_GRPC_PORT", "JUKEBOX_DATABASE_DSN",
		"JUKEBOX_DATABASE_DRIVER", "JUKEBOX_KAFKA_BROKERS", "JUKEBOX_LOG_DEVELOPMENT",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2022, cfg.Server.HTTPPort)
	assert.Equal(t, 9090, cfg.Server.GRPCPort)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 5, cfg.Database.ConnectRetries)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "jukebox.events", cfg.Kafka.Topic)

	// No DSN configured.
	assert.Error(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  http_port: 8080
  cors_origins: ["https://jukebox.example"]
database:
  driver: sqlite
  dsn: "file:jukebox.db"
  auto_migrate: false
kafka:
  brokers: ["localhost:9092"]
log:
  development: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 9090, cfg.Server.GRPCPort)
	assert.Equal(t, []string{"https://jukebox.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:jukebox.db", cfg.Database.DSN)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Log.Development)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  http_port: 8080
database:
  dsn: "postgres://file"
`)
	t.Setenv("JUKEBOX_SERVER_HTTP_PORT", "3000")
	t.Setenv("JUKEBOX_DATABASE_DSN", "postgres://env")
	t.Setenv("JUKEBOX_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.HTTPPort)
	assert.Equal(t, "postgres://env", cfg.Database.DSN)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestDeploymentEnvNames(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PORT", "4000")
	t.Setenv("DATABASE_URL", "postgres://render")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.HTTPPort)
	assert.Equal(t, "postgres://render", cfg.Database.DSN)
	assert.NoError(t, cfg.Validate())
}

func TestDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JUKEBOX_DATABASE_DSN=postgres://dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("JUKEBOX_DATABASE_DSN") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://dotenv", cfg.Database.DSN)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:   ServerConfig{HTTPPort: 2022, GRPCPort: 9090},
		Database: DatabaseConfig{Driver: "postgres", DSN: "postgres://x"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"zero http port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"negative grpc port", func(c *Config) { c.Server.GRPCPort = -1 }},
		{"port out of range", func(c *Config) { c.Server.HTTPPort = 70000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
