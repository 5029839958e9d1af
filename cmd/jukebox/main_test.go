package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gartstein/jukebox/internal/jukebox/config"
	"github.com/gartstein/jukebox/internal/jukebox/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeSQLiteConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dsn := filepath.Join(dir, "jukebox.db")
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("database:\n  driver: sqlite\n  dsn: %q\n  connect_retries: 0\nlog:\n  development: true\n", dsn)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path, dsn
}

func TestOpenRepositoryUnreachable(t *testing.T) {
	_, err := openRepository(context.Background(), config.DatabaseConfig{
		Driver:         "sqlite",
		DSN:            filepath.Join(t.TempDir(), "missing", "dir", "x.db"),
		ConnectRetries: 1,
	}, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestMigrateAndSeedCommands(t *testing.T) {
	path, dsn := writeSQLiteConfig(t)

	rootCmd.SetArgs([]string{"migrate", "--config", path})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"seed", "--config", path})
	require.NoError(t, rootCmd.Execute())
	// Seeding twice keeps the content as it is.
	rootCmd.SetArgs([]string{"seed", "--config", path})
	require.NoError(t, rootCmd.Execute())

	repo, err := db.NewRepository(&db.Config{Driver: db.DriverSQLite, DSN: dsn})
	require.NoError(t, err)
	defer repo.Close()

	features, err := repo.ListProductFeatures(context.Background())
	require.NoError(t, err)
	assert.Len(t, features, 6)

	page, err := repo.GetContentPageBySlug(context.Background(), "privacy")
	require.NoError(t, err)
	assert.Equal(t, "Privacy Policy", page.Title)
}

func TestSetupRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: oracle\n  dsn: x\n"), 0o600))

	configPath = path
	t.Cleanup(func() { configPath = "" })
	_, _, err := setup()
	assert.Error(t, err)
}
