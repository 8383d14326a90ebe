package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "plot.yaml", `
width: 12
title: Shots
home:
  team: WSH
  stat: "12"
away:
  team: PIT
  name: Pens
markers:
  - side: home
    x: [60, 70.5]
    y: [-3, 4]
    fill: red
    labels: [a, b]
    showLabels: true
  - side: away
    x: [80]
    y: [0]
    shape: D
`)

	p, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 12.0, p.Width)
	assert.Equal(t, "Shots", p.Title)
	assert.Equal(t, TeamConfig{Team: "WSH", Stat: "12"}, p.Home)
	assert.Equal(t, TeamConfig{Team: "PIT", Name: "Pens"}, p.Away)
	require.Len(t, p.Markers, 2)
	assert.Equal(t, []float64{60, 70.5}, p.Markers[0].X)
	assert.Equal(t, []string{"a", "b"}, p.Markers[0].Labels)
	assert.True(t, p.Markers[0].ShowLabels)
	assert.Equal(t, "o", p.Markers[0].Shape)
	assert.Equal(t, "black", p.Markers[0].Edge)
	assert.Equal(t, "D", p.Markers[1].Shape)
}

func TestLoad_JSONDefaults(t *testing.T) {
	path := writeConfig(t, "plot.json", `{}`)

	p, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 20.0, p.Width)
	assert.Equal(t, 100.0, p.DPI)
	assert.Equal(t, "", p.Assets)
	assert.Equal(t, "rink.png", p.Output)
	assert.Equal(t, "rinkplot", p.Credit)
	assert.Equal(t, "info", p.LogLevel)
	assert.Empty(t, p.Markers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "plot.yaml", "output: file.png\nlogLevel: warn\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("output", "", "")
	fs.String("log-level", "info", "")
	fs.Float64("dpi", 100, "")
	require.NoError(t, fs.Parse([]string{"--output", "flag.png", "--dpi", "300"}))

	p, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "flag.png", p.Output)
	assert.Equal(t, 300.0, p.DPI)
	assert.Equal(t, "warn", p.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "plot.yaml", "output: file.png\n")
	t.Setenv("RINKPLOT_OUTPUT", "env.png")

	p, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "env.png", p.Output)
}

func TestValidate(t *testing.T) {
	path := writeConfig(t, "plot.yaml", "width: -1\ndpi: 0\n")

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width must be positive")
	assert.Contains(t, err.Error(), "dpi must be positive")
}
