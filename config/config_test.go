package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-engine/config"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "leave.db", cfg.DBPath)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9090"
db_path: "/tmp/leave-test.db"
cors_origins:
  - "https://leave.example.com"
holiday_feeds:
  - path: "holidays-2024.ics"
    format: "ics"
  - path: "holidays-2024.json"
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "/tmp/leave-test.db", cfg.DBPath)
	assert.Equal(t, []string{"https://leave.example.com"}, cfg.CORSOrigins)
	require.Len(t, cfg.HolidayFeeds, 2)
	assert.Equal(t, "ics", cfg.HolidayFeeds[0].Format)
	assert.Equal(t, "json", cfg.HolidayFeeds[1].Format) // defaulted
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}
