package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logotint/model"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, def.ListenAddr, cfg.ListenAddr)
	assert.Equal(t, def.RetentionDays, cfg.RetentionDays)
	assert.Equal(t, def.Schedules, cfg.Schedules)
	assert.NoError(t, cfg.Validate())
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.DataDir = dir
	cfg.ListenAddr = "127.0.0.1:7000"
	cfg.CaseSensitive = true
	cfg.ImportRate = 0.5
	cfg.Schedules = []model.Schedule{{
		ID: "hourly", Name: "hourly", Enabled: true, Type: model.ScheduleInterval, Every: "1h",
	}}
	require.NoError(t, Save(cfg))

	_, err := os.Stat(filepath.Join(dir, FileName+".tmp"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOGOTINT_LISTEN_ADDR", ":9999")
	t.Setenv("LOGOTINT_CASE_SENSITIVE", "true")
	t.Setenv("LOGOTINT_RETENTION_DAYS", "7")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.True(t, cfg.CaseSensitive)
	assert.Equal(t, 7, cfg.RetentionDays)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"log_level":"debug"}`), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, dir, cfg.DataDir)
}

func TestLoadBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"listen_addr":`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.LogFormat = "xml"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.ImportBurst = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.ListenAddr = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
