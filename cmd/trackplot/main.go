// Command trackplot writes an image of a track, its lanes and the robots'
// positions at a given animation time.
package main

import (
	"flag"
	"log/slog"
	"os"

	"gonum.org/v1/plot/vg"

	"robotrace/internal/race"
	"robotrace/internal/track"
	"robotrace/internal/trackplot"
)

var (
	trackIdx = flag.Int("track", 0, "index of the track to plot (0 oval, 1 circuit)")
	atTime   = flag.Float64("time", 0, "animation time of the robot snapshot; negative plots the track alone")
	out      = flag.String("out", "track.png", "output file; the extension picks the format")
	samples  = flag.Int("samples", 400, "points per lane around the loop")
	size     = flag.Float64("size", 8, "image side in inches")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	race.SetLogger(logger)

	if err := run(); err != nil {
		logger.Error("trackplot", "err", err)
		os.Exit(1)
	}
	logger.Info("wrote plot", "path", *out)
}

func run() error {
	catalog, err := track.DefaultCatalog()
	if err != nil {
		return err
	}
	rc, err := race.New(catalog, track.DefaultConfig(), race.DefaultConfig(), race.DefaultRobots())
	if err != nil {
		return err
	}
	if err := rc.SelectTrack(*trackIdx); err != nil {
		return err
	}
	res, err := track.NewResolver(rc.Track().Curve, track.DefaultConfig())
	if err != nil {
		return err
	}

	var robots []*race.Robot
	if *atTime >= 0 {
		// Step up to the snapshot so lane assignments have evolved.
		const fps = 60
		for f := 1; float64(f)/fps < *atTime; f++ {
			if _, err := rc.Update(float64(f) / fps); err != nil {
				return err
			}
		}
		if _, err := rc.Update(*atTime); err != nil {
			return err
		}
		robots = rc.Robots()
	}

	opts := trackplot.DefaultOptions()
	opts.Samples = *samples
	opts.Width = vg.Length(*size) * vg.Inch
	opts.Title = rc.Track().Name
	return trackplot.Save(*out, res, robots, opts)
}
