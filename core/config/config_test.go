package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 9, cfg.Server.RowWidth)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Equal(t, "database", cfg.Catalog.Source)
	assert.Equal(t, 300, cfg.Catalog.CacheTTLSeconds)
	assert.Equal(t, "auto", cfg.Search.Mode)
	assert.Equal(t, "name", cfg.Search.SortBy)
	assert.False(t, cfg.Assist.Enabled)
	assert.Equal(t, 64, cfg.Assist.QueueSize)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_ROW_WIDTH", "12")
	t.Setenv("SEARCH_SORT_BY", "amount")
	t.Setenv("SEARCH_TOOLTIP_SEARCH", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Server.RowWidth)
	assert.Equal(t, "amount", cfg.Search.SortBy)
	assert.True(t, cfg.Search.TooltipSearch)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CATALOG_SOURCE=storage\nASSIST_CHANNEL=search:dev\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("CATALOG_SOURCE")
		os.Unsetenv("ASSIST_CHANNEL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "storage", cfg.Catalog.Source)
	assert.Equal(t, "search:dev", cfg.Assist.Channel)
}
