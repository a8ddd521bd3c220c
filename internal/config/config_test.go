package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, 3, cfg.Shred.Passes)
	assert.Equal(t, "random", cfg.Shred.Method)
	assert.Equal(t, 8192, cfg.Shred.ChunkSize)
	assert.True(t, cfg.Shred.UseExternalTool)
	assert.False(t, cfg.Clean.ShellHistory)
	assert.Contains(t, cfg.Security.ProtectedPaths, "/")
	assert.Contains(t, cfg.Security.ProtectedPaths, "/etc")
}

func TestValidatePassBounds(t *testing.T) {
	tests := []struct {
		passes int
		ok     bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{10, true},
		{11, false},
		{-1, false},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Shred.Passes = tt.passes
		err := Validate(cfg)
		if tt.ok {
			assert.NoError(t, err, "passes=%d", tt.passes)
		} else {
			assert.Error(t, err, "passes=%d", tt.passes)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Shred.Method = "gutmann"
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Shred.ChunkSize = 0
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Shred.ChunkSize = 2 * 1024 * 1024
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Shred.MaxSpeedMBps = -1
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Logging.Level = "TRACE"
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Security.ProtectedPaths = append(cfg.Security.ProtectedPaths, "")
	assert.Error(t, Validate(cfg))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Shred.Passes, cfg.Shred.Passes)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.Shred.Method)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `shred:
  passes: 7
  method: dod5220
clean:
  shell_history: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Shred.Passes)
	assert.Equal(t, "dod5220", cfg.Shred.Method)
	assert.True(t, cfg.Clean.ShellHistory)
	// Незатронутые секции остаются со значениями по умолчанию
	assert.Equal(t, 8192, cfg.Shred.ChunkSize)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shred:\n  passes: 15\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Shred.Passes = 5
	cfg.Shred.Method = "zero"
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.Shred.Passes)
	assert.Equal(t, "zero", loaded.Shred.Method)
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Shred.Passes = 0
	assert.Error(t, Save(cfg, filepath.Join(t.TempDir(), "config.yaml")))
}

func TestApplyProfile(t *testing.T) {
	cfg := Default()
	require.NoError(t, ApplyProfile(cfg, "quick"))
	assert.Equal(t, 1, cfg.Shred.Passes)
	assert.Equal(t, 64*1024, cfg.Shred.ChunkSize)

	cfg = Default()
	require.NoError(t, ApplyProfile(cfg, "paranoid"))
	assert.Equal(t, 7, cfg.Shred.Passes)
	assert.Equal(t, "dod5220", cfg.Shred.Method)
	assert.True(t, cfg.Clean.ShellHistory)
	require.NoError(t, Validate(cfg))

	cfg = Default()
	assert.Error(t, ApplyProfile(cfg, "turbo"))
}
