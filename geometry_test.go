package rink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtents(t *testing.T) {
	assert.Equal(t, Extent{XMin: -100, XMax: 100, YMin: -42.5, YMax: 42.5}, RinkExtent)
	assert.Equal(t, Extent{XMin: -105, XMax: 105, YMin: -47.5, YMax: 62.5}, FigureExtent)
	assert.InDelta(t, FigureExtent.Height()/FigureExtent.Width(), AspectRatio, 1e-12)

	x, y := RinkExtent.Center()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.True(t, FigureExtent.Contains(RinkExtent.XMin, RinkExtent.YMax))
	assert.False(t, RinkExtent.Contains(0, 50))
}

func TestLogoExtent(t *testing.T) {
	away, err := LogoExtent(Away, 200, 100)
	require.NoError(t, err)

	cx, cy := away.Center()
	assert.InDelta(t, 47, cx, 1e-12)
	assert.Zero(t, cy)
	assert.InDelta(t, 94.0/3, away.Width(), 1e-12)
	assert.InDelta(t, 47.0/3, away.Height(), 1e-12)
}

func TestLogoExtent_HomeMirrorsAway(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {200, 100}, {37, 91}} {
		away, err := LogoExtent(Away, size[0], size[1])
		require.NoError(t, err)
		home, err := LogoExtent(Home, size[0], size[1])
		require.NoError(t, err)

		ax, ay := away.Center()
		hx, hy := home.Center()
		assert.Equal(t, -ax, hx)
		assert.Equal(t, ay, hy)
		assert.Equal(t, away.Width(), home.Width())
		assert.Equal(t, away.Height(), home.Height())
	}
}

func TestLogoExtent_Invalid(t *testing.T) {
	_, err := LogoExtent(Side("both"), 10, 10)
	assert.ErrorIs(t, err, ErrInvalidSide)

	_, err = LogoExtent(Home, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamNameAnchor(t *testing.T) {
	x, y, ax, err := TeamNameAnchor(Home)
	require.NoError(t, err)
	assert.Equal(t, -2.0, x)
	assert.Equal(t, 45.5, y)
	assert.Equal(t, 1.0, ax)

	x, y, ax, err = TeamNameAnchor(Away)
	require.NoError(t, err)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 45.5, y)
	assert.Equal(t, 0.0, ax)

	_, _, _, err = TeamNameAnchor(Side("visitor"))
	assert.ErrorIs(t, err, ErrInvalidSide)
}

func TestTextAnchorsInsideFigure(t *testing.T) {
	x, y := titleAnchor()
	assert.True(t, FigureExtent.Contains(x, y))
	assert.Greater(t, y, RinkExtent.YMax)

	x, y = creditAnchor()
	assert.True(t, FigureExtent.Contains(x, y))
	assert.Less(t, y, RinkExtent.YMin)
}
