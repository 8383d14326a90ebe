// Package rink draws ice-hockey rink figures.
//
// # Overview
//
// A [Figure] is a canvas sized to rink proportions with the rink background
// already drawn. Team logos, a title, team-name labels and scatter layers of
// event markers are placed on top of it, and the result is saved as a PNG or
// JPEG image. All drawing is delegated to [github.com/gogpu/gg]; this package
// only does the layout arithmetic.
//
// # Quick Start
//
//	fig, err := rink.NewFigure(20)
//	if err != nil {
//	    return err
//	}
//	defer fig.Close()
//
//	_ = fig.AddTeamLogo(rink.Home, "WSH")
//	_ = fig.AddTeamLogo(rink.Away, "PIT")
//	fig.AddTitle("Shots, period 1")
//	_ = fig.AddTeamName(rink.Home, "Capitals", "12")
//	_ = fig.AddTeamName(rink.Away, "Penguins", "9")
//
//	_, err = fig.AddMarkers(rink.Home, xs, ys, rink.MarkerStyle{
//	    Fill:  colornames.Red,
//	    Edge:  colornames.Black,
//	    Shape: rink.Circle,
//	}, nil)
//
//	err = fig.Save("shots.png")
//
// # Coordinate System
//
// All layout is expressed in feet with the origin at center ice:
//   - X runs along the length of the rink, from -100 to 100
//   - Y runs across the rink, from -42.5 to 42.5, increasing upwards
//   - The home side is the left half (negative X)
//
// The figure extent adds [BufferX] and [BufferY] of margin around the rink
// and [HeaderY] of headroom above it for the title and team names.
//
// # Assets
//
// The rink background is read from "rink.png" and logos from
// "teams/<TRICODE>.png" inside an [io/fs.FS]. By default the assets embedded
// in this module are used; see [WithAssets] and [WithAssetDir].
package rink
