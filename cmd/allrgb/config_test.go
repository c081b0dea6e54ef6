package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/allrgb/imageio"
	"github.com/katalvlaran/allrgb/palette"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "allrgb.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestResolveConfig_Defaults(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := resolveConfig(nil, &stderr)
	require.NoError(t, err)
	assert.Equal(t, defaultRunConfig(), cfg)
	assert.False(t, cfg.SeedSet)
}

func TestLoadRunConfig_OnlyDefinedKeys(t *testing.T) {
	path := writeConfig(t, `
rows = 64
seed = 0
order = " bfs "
`)
	cfg, err := loadRunConfig(path, defaultRunConfig())
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Rows)
	assert.Equal(t, 4096, cfg.Cols, "cols not in file")
	assert.Equal(t, "bfs", cfg.Order)
	assert.Equal(t, "random", cfg.Symmetry)
	assert.True(t, cfg.SeedSet, "seed = 0 is an explicit seed")
	assert.Zero(t, cfg.Seed)
}

func TestLoadRunConfig_Errors(t *testing.T) {
	_, err := loadRunConfig(filepath.Join(t.TempDir(), "missing.toml"), defaultRunConfig())
	assert.Error(t, err)

	_, err = loadRunConfig(writeConfig(t, `rows = "many"`), defaultRunConfig())
	assert.Error(t, err)

	_, err = loadRunConfig(writeConfig(t, `colour = "red"`), defaultRunConfig())
	assert.ErrorContains(t, err, "colour")
}

func TestResolveConfig_Precedence(t *testing.T) {
	path := writeConfig(t, `
rows = 10
cols = 20
output = "file.png"
seed = 7
symmetry = "identity"
check = true
log_level = "debug"
`)
	var stderr bytes.Buffer

	cfg, err := resolveConfig([]string{"-config", path}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Rows)
	assert.Equal(t, 20, cfg.Cols)
	assert.Equal(t, "file.png", cfg.Output)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Check)
	assert.Equal(t, "debug", cfg.LogLevel)

	// explicit flags beat the file, unset flags do not
	cfg, err = resolveConfig([]string{"-config", path, "-cols", "30", "-seed", "9"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Rows)
	assert.Equal(t, 30, cfg.Cols)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "identity", cfg.Symmetry)

	// positionals beat flags
	cfg, err = resolveConfig([]string{"-config", path, "-rows", "11", "3", "4", "pos.bmp"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Rows)
	assert.Equal(t, 4, cfg.Cols)
	assert.Equal(t, "pos.bmp", cfg.Output)
}

func TestResolveConfig_BadPositionals(t *testing.T) {
	var stderr bytes.Buffer
	_, err := resolveConfig([]string{"3", "4"}, &stderr)
	assert.ErrorIs(t, err, errUsage)
	_, err = resolveConfig([]string{"x", "4", "out.png"}, &stderr)
	assert.ErrorIs(t, err, errUsage)
	_, err = resolveConfig([]string{"-nope"}, &stderr)
	assert.Error(t, err)
}

func TestGenerateOptions(t *testing.T) {
	cfg := defaultRunConfig()
	for _, s := range []string{"random", "identity", "0", "47"} {
		cfg.Symmetry = s
		_, err := generateOptions(cfg)
		assert.NoError(t, err, s)
	}
	for _, s := range []string{"48", "-1", "mirror"} {
		cfg.Symmetry = s
		_, err := generateOptions(cfg)
		assert.ErrorIs(t, err, palette.ErrSymmetryIndex, s)
	}
	cfg.Symmetry = "random"
	cfg.Order = "spiral"
	_, err := generateOptions(cfg)
	assert.Error(t, err)
}

func TestRun_GenerateAndVerify(t *testing.T) {
	out := filepath.Join(t.TempDir(), "small.png")
	var stderr bytes.Buffer

	require.NoError(t, run([]string{"-seed", "5", "-check", "-log-level", "debug", "16", "16", out}, &stderr))
	logs := stderr.String()
	assert.Contains(t, logs, "image written")
	assert.Contains(t, logs, "color check")
	assert.Contains(t, logs, appName)

	r, err := imageio.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 16, r.Rows)
	assert.Equal(t, 16, r.Cols)

	stderr.Reset()
	require.NoError(t, run([]string{"-verify", out}, &stderr))
	assert.Contains(t, stderr.String(), "verified")
}

func TestRun_Errors(t *testing.T) {
	var stderr bytes.Buffer
	assert.ErrorIs(t, run([]string{"4", "4", "out.jpg"}, &stderr), imageio.ErrUnsupportedFormat)
	assert.Error(t, run([]string{"-log-level", "loud"}, &stderr))
}

func TestRandomSeed(t *testing.T) {
	s, err := randomSeed()
	require.NoError(t, err)
	assert.Positive(t, s)
}
