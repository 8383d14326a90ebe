package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hockeyviz/rink"
	"github.com/hockeyviz/rink/internal/config"
)

const plotYAML = `
width: 6
dpi: 40
title: Shots
logLevel: debug
home:
  team: WSH
  stat: "2"
away:
  team: pit
markers:
  - side: home
    x: [60, 75]
    y: [-10, 5]
    fill: "#c8102e"
    labels: [Ovechkin, Wilson]
    showLabels: true
  - side: away
    x: [80]
    y: [2]
    shape: "^"
    fill: gold
`

func writePlot(t *testing.T, body string) (configPath, outDir string) {
	t.Helper()
	dir := t.TempDir()
	configPath = filepath.Join(dir, "plot.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0644))
	return configPath, dir
}

func TestRun_WritesImage(t *testing.T) {
	cfg, dir := writePlot(t, plotYAML)
	out := filepath.Join(dir, "shots.png")

	var stderr bytes.Buffer
	require.NoError(t, run([]string{"--config", cfg, "--output", out}, &stderr))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Width)

	assert.Contains(t, stderr.String(), "rinkplot: config loaded")
	assert.Contains(t, stderr.String(), "rink: figure saved")
}

func TestRun_MissingConfig(t *testing.T) {
	var stderr bytes.Buffer
	err := run([]string{"-c", filepath.Join(t.TempDir(), "none.yaml")}, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestRun_BadFlag(t *testing.T) {
	var stderr bytes.Buffer
	assert.Error(t, run([]string{"--bogus"}, &stderr))
}

func TestRun_InvalidSide(t *testing.T) {
	cfg, dir := writePlot(t, `
markers:
  - side: centre
    x: [1]
    y: [1]
`)
	var stderr bytes.Buffer
	err := run([]string{"-c", cfg, "-o", filepath.Join(dir, "out.png"), "--width", "2", "--dpi", "20"}, &stderr)
	assert.ErrorIs(t, err, rink.ErrInvalidSide)
	assert.Contains(t, err.Error(), "markers[0]")
}

func TestRender_UnknownTeam(t *testing.T) {
	err := render(&config.Plot{
		Width:  2,
		DPI:    20,
		Output: filepath.Join(t.TempDir(), "out.png"),
		Home:   config.TeamConfig{Team: "ZZZ"},
	})
	assert.ErrorIs(t, err, rink.ErrUnknownTeam)
	assert.Contains(t, err.Error(), "home logo")
}

func TestRender_LengthMismatch(t *testing.T) {
	err := render(&config.Plot{
		Width:  2,
		DPI:    20,
		Output: filepath.Join(t.TempDir(), "out.png"),
		Markers: []config.MarkerSet{
			{Side: "away", X: []float64{1, 2}, Y: []float64{1}, Shape: "o"},
		},
	})
	assert.ErrorIs(t, err, rink.ErrLengthMismatch)
}

func TestRender_UnknownColor(t *testing.T) {
	err := render(&config.Plot{
		Width:  2,
		DPI:    20,
		Output: filepath.Join(t.TempDir(), "out.png"),
		Markers: []config.MarkerSet{
			{Side: "away", X: []float64{1}, Y: []float64{1}, Shape: "o", Fill: "blurple"},
		},
	})
	assert.ErrorIs(t, err, rink.ErrUnknownColor)
}

func TestRender_TeamNameFromRegistry(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	err := render(&config.Plot{
		Width:  2,
		DPI:    20,
		Output: out,
		Away:   config.TeamConfig{Team: "MTL", Stat: "1"},
	})
	require.NoError(t, err)
	assert.FileExists(t, out)
}
