package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"robotrace/internal/race"
	"robotrace/internal/track"
)

// Options tunes the desktop viewer.
type Options struct {
	Mute      bool
	TimeScale float64 // initial animation speed, 0 means 1
}

// RunDesktop opens a window and animates rc until the window is closed or Esc
// is pressed.
//
// Keys: T next track, P or Space pause, +/- animation speed, E/R zoom, F refit.
func RunDesktop(rc *race.Race, opts Options) error {
	runtime.LockOSThread()
	log := race.Logger()

	window, err := initWindow(windowTitle(rc))
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	sound := !opts.Mute
	if sound {
		if err := InitAudio(); err != nil {
			log.Warn("audio init failed (continuing without sound)", "err", err)
			sound = false
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	bus := NewEventBus()
	session := NewSession(rc, bus)
	if opts.TimeScale > 0 {
		session.TimeScale = clampF(opts.TimeScale, MinTimeScale, MaxTimeScale)
	}

	trackDirty := true
	bus.Subscribe(EventTrackSwitched, func(e Event) {
		trackDirty = true
		window.SetTitle(windowTitle(rc))
	})
	if sound {
		laneCount := rc.Geometry().Config().LaneCount
		bus.Subscribe(EventLaneChange, func(e Event) {
			kind := SoundMerge
			if e.Change.Reason == race.ReasonYield {
				kind = SoundYield
			}
			PlaySoundPanned(kind, LanePan(e.Change.To, laneCount))
		})
		bus.Subscribe(EventTrackSwitched, func(Event) { PlaySound(SoundTrackSwitch) })
		bus.Subscribe(EventPaused, func(Event) { PlaySound(SoundPause) })
		bus.Subscribe(EventResumed, func(Event) { PlaySound(SoundPause) })
	}

	cam := Camera{Zoom: DefaultZoom}
	autoFit := true
	input := NewInput()

	// Reusable render buffers.
	var trackBuf, glowBuf, robotBuf, markBuf []float32
	var bounds Bounds

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if input.JustPressed(window, glfw.KeyT) {
			if err := session.NextTrack(); err != nil {
				return err
			}
		}
		// Poll both keys of each pair so neither misses its release.
		pause, space := input.JustPressed(window, glfw.KeyP), input.JustPressed(window, glfw.KeySpace)
		if pause || space {
			session.TogglePause()
		}
		faster, kpFaster := input.JustPressed(window, glfw.KeyEqual), input.JustPressed(window, glfw.KeyKPAdd)
		if faster || kpFaster {
			session.ScaleTime(2)
		}
		slower, kpSlower := input.JustPressed(window, glfw.KeyMinus), input.JustPressed(window, glfw.KeyKPSubtract)
		if slower || kpSlower {
			session.ScaleTime(0.5)
		}
		if input.JustPressed(window, glfw.KeyF) {
			autoFit = true
		}

		if trackDirty {
			res, err := track.NewResolver(rc.Track().Curve, rc.Geometry().Config())
			if err != nil {
				return err
			}
			if trackBuf, err = TrackSprites(trackBuf[:0], res, TrackSamples); err != nil {
				return fmt.Errorf("track %q: %w", rc.Track().Name, err)
			}
			b, err := TrackBounds(res, TrackSamples)
			if err != nil {
				return fmt.Errorf("track %q: %w", rc.Track().Name, err)
			}
			bounds = b.Grow(TrackMargin)
			autoFit = true
			trackDirty = false
		}

		if err := session.Update(dt); err != nil {
			return err
		}

		if UpdateCameraZoom(&cam, window, dt, bounds, fbW, fbH) {
			autoFit = false
		}
		if autoFit {
			target := cam
			FitCamera(&target, bounds, fbW, fbH)
			EaseCamera(&cam, target, 4, dt)
		}

		robots := rc.Robots()
		glowBuf = RobotGlowSprites(glowBuf[:0], robots)
		robotBuf = RobotSprites(robotBuf[:0], robots)
		markBuf = HeadingSprites(markBuf[:0], robots)

		rend.BeginFrame(fbW, fbH)
		rend.DrawSprites(trackBuf, cam, fbW, fbH)
		rend.DrawGlowSprites(glowBuf, cam, fbW, fbH)
		rend.DrawRobotSprites(robotBuf, cam, fbW, fbH)
		rend.DrawSprites(markBuf, cam, fbW, fbH)

		window.SwapBuffers()
	}

	log.Info("viewer closed", "clock", session.Clock, "merges", session.Merges, "yields", session.Yields)
	return nil
}

func windowTitle(rc *race.Race) string {
	return fmt.Sprintf("%s - %s", WindowTitle, rc.Track().Name)
}
