package main

import (
	"fmt"

	"github.com/hockeyviz/rink"
	"github.com/hockeyviz/rink/internal/config"
)

// render draws plot and writes it to plot.Output.
func render(plot *config.Plot) error {
	opts := []rink.Option{
		rink.WithDPI(plot.DPI),
		rink.WithCredit(plot.Credit),
	}
	if plot.Assets != "" {
		opts = append(opts, rink.WithAssetDir(plot.Assets))
	}

	fig, err := rink.NewFigure(plot.Width, opts...)
	if err != nil {
		return err
	}
	defer fig.Close()

	for _, side := range []struct {
		side rink.Side
		team config.TeamConfig
	}{
		{rink.Home, plot.Home},
		{rink.Away, plot.Away},
	} {
		if err := addTeam(fig, side.side, side.team); err != nil {
			return err
		}
	}

	if plot.Title != "" {
		fig.AddTitle(plot.Title)
	}

	for i, set := range plot.Markers {
		if err := addMarkers(fig, set); err != nil {
			return fmt.Errorf("markers[%d]: %w", i, err)
		}
	}

	return fig.Save(plot.Output)
}

// addTeam draws the logo and name for one side. Empty settings are skipped.
func addTeam(fig *rink.Figure, side rink.Side, team config.TeamConfig) error {
	if team.Team != "" {
		if err := fig.AddTeamLogo(side, team.Team); err != nil {
			return fmt.Errorf("%s logo: %w", side, err)
		}
	}

	name := team.Name
	if name == "" {
		if t, ok := rink.LookupTeam(team.Team); ok {
			name = t.Name
		}
	}
	if name == "" {
		return nil
	}
	return fig.AddTeamName(side, name, team.Stat)
}

// addMarkers parses one marker set and draws it.
func addMarkers(fig *rink.Figure, set config.MarkerSet) error {
	side, err := rink.ParseSide(set.Side)
	if err != nil {
		return err
	}
	shape, err := rink.ParseMarker(set.Shape)
	if err != nil {
		return err
	}
	style := rink.MarkerStyle{
		Shape:      shape,
		Size:       set.Size,
		ShowLabels: set.ShowLabels,
	}
	if set.Fill != "" {
		if style.Fill, err = rink.ParseColor(set.Fill); err != nil {
			return err
		}
	}
	if set.Edge != "" {
		if style.Edge, err = rink.ParseColor(set.Edge); err != nil {
			return err
		}
	}

	_, err = fig.AddMarkers(side, set.X, set.Y, style, set.Labels)
	return err
}
