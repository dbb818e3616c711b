package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func _configCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().Int("stages", 7, "")
	cmd.Flags().Int("part", 0, "")
	cmd.Flags().Duration("bench", 0, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := _loadConfig(_newViper(), _configCommand(t))
	require.NoError(t, err)
	assert.Equal(t, _defaultInput, cfg.Input)
	assert.Equal(t, 7, cfg.Stages)
	assert.Zero(t, cfg.Part)
	assert.Zero(t, cfg.Bench)
}

func TestLoadConfigFileEnvAndFlags(t *testing.T) {
	name := filepath.Join(t.TempDir(), "seedmap.yaml")
	require.NoError(t, os.WriteFile(name, []byte("input: my.txt\nstages: 3\nbench: 2s\npart: 1\n"), 0644))
	t.Setenv("SEEDMAP_STAGES", "4")

	cfg, err := _loadConfig(_newViper(), _configCommand(t, "--config", name, "--part", "2"))
	require.NoError(t, err)
	assert.Equal(t, "my.txt", cfg.Input)
	assert.Equal(t, 4, cfg.Stages, "environment beats the file")
	assert.Equal(t, 2, cfg.Part, "flags beat everything")
	assert.Equal(t, 2*time.Second, cfg.Bench)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := _loadConfig(_newViper(), _configCommand(t, "--part", "3"))
	assert.Error(t, err)

	_, err = _loadConfig(_newViper(), _configCommand(t, "--stages", "0"))
	assert.Error(t, err)

	_, err = _loadConfig(_newViper(), _configCommand(t, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	for _, tt := range []struct{ name, format, want string }{
		{"inputs/day_05.txt", "", _formatText},
		{"almanac.yaml", "", _formatYAML},
		{"almanac.yml", "", _formatYAML},
		{"almanac.gob", "", _formatSnapshot},
		{"almanac.gob", _formatText, _formatText},
	} {
		got, err := _detectFormat(tt.name, tt.format)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := _detectFormat("x", "json")
	assert.Error(t, err)
}
