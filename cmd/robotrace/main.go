// Command robotrace animates robots racing around a multi-lane track.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"robotrace/internal/game"
	"robotrace/internal/race"
	"robotrace/internal/track"
)

var (
	trackIdx = flag.Int("track", 0, "index of the starting track (0 oval, 1 circuit)")
	speed    = flag.Float64("speed", 1, "initial animation speed multiplier")
	cooldown = flag.Float64("cooldown", 0, "minimum seconds between voluntary lane changes of one robot (0 disables)")
	sample   = flag.Float64("sample", 0, "resolve lanes from points precomputed at this parameter interval (0 evaluates the curve directly)")
	mute     = flag.Bool("mute", false, "disable sound effects")
	verbose  = flag.Bool("v", false, "log every lane change")
	headless = flag.Float64("headless", 0, "simulate this many seconds at 60 frames per second without a window and print a summary")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	race.SetLogger(logger)

	if err := run(); err != nil {
		logger.Error("robotrace", "err", err)
		os.Exit(1)
	}
}

func run() error {
	catalog, err := track.DefaultCatalog()
	if err != nil {
		return err
	}
	cfg := race.DefaultConfig()
	cfg.LaneChangeCooldown = *cooldown
	cfg.SampleInterval = *sample

	rc, err := race.New(catalog, track.DefaultConfig(), cfg, race.DefaultRobots())
	if err != nil {
		return err
	}
	if err := rc.SelectTrack(*trackIdx); err != nil {
		return err
	}

	if *headless > 0 {
		return simulate(rc, *headless)
	}
	return game.RunDesktop(rc, game.Options{Mute: *mute, TimeScale: *speed})
}

func simulate(rc *race.Race, seconds float64) error {
	const fps = 60
	frames := int(seconds * fps)
	var merges, yields int
	for f := 1; f <= frames; f++ {
		changes, err := rc.Update(float64(f) / fps * *speed)
		if err != nil {
			return fmt.Errorf("frame %d: %w", f, err)
		}
		for _, c := range changes {
			if c.Reason == race.ReasonYield {
				yields++
			} else {
				merges++
			}
		}
	}
	fmt.Printf("track %s: %d frames, %d merges, %d yields\n", rc.Track().Name, frames, merges, yields)
	for _, r := range rc.Robots() {
		fmt.Printf("  %-6s lane %d  (%.2f, %.2f)\n", r.Name, r.Lane, r.Position.X, r.Position.Y)
	}
	return nil
}
