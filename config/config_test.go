package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	set := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(set)
	require.NoError(t, set.Parse(args))
	return set
}

func TestLoadDefaults(t *testing.T) {
	cfg, _, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFlags(t *testing.T) {
	cfg, _, err := Load(newFlags(t, "--width", "320", "--margin=5", "--labels=false", "-o", "out.png", "--format", "png"))
	require.NoError(t, err)
	assert.Equal(t, 320.0, cfg.Width)
	assert.Equal(t, 5.0, cfg.Margin)
	assert.False(t, cfg.Labels)
	assert.Equal(t, "out.png", cfg.Output)
	assert.Equal(t, "png", cfg.Format)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MINICHART_LINE_COLOR", "#123456")
	t.Setenv("MINICHART_HEIGHT", "90")

	cfg, _, err := Load(newFlags(t, "--height", "120"))
	require.NoError(t, err)
	assert.Equal(t, "#123456", cfg.LineColor)
	assert.Equal(t, 120.0, cfg.Height, "flags should win over the environment")
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "minichart.yaml")
	doc := "width: 640\nfont: 16px serif\nlabel-position: inside\npalette: tableau10\n"
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o644))

	cfg, _, err := Load(newFlags(t, "--config", file, "--palette", "category10"))
	require.NoError(t, err)
	assert.Equal(t, 640.0, cfg.Width)
	assert.Equal(t, "16px serif", cfg.Font)
	assert.Equal(t, "inside", cfg.LabelPosition)
	assert.Equal(t, "category10", cfg.Palette)

	_, _, err = Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	var (
		margin = 0.0
		grid   = false
		base   = Default()
	)
	cfg := base.Merge(Override{
		Width:     100,
		Margin:    &margin,
		Grid:      &grid,
		LineColor: "#ff0000",
	})
	assert.Equal(t, 100.0, cfg.Width)
	assert.Equal(t, base.Height, cfg.Height)
	assert.Equal(t, 0.0, cfg.Margin)
	assert.False(t, cfg.Grid)
	assert.True(t, cfg.Labels)
	assert.Equal(t, "#ff0000", cfg.LineColor)

	assert.Equal(t, base, base.Merge(Override{}))
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"
	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.LogLevel = "loud"
	_, err = cfg.Logger()
	assert.Error(t, err)

	cfg.LogLevel = "info"
	cfg.LogFormat = "xml"
	_, err = cfg.Logger()
	assert.Error(t, err)
}
