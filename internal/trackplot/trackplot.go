// Package trackplot renders a track, its lanes and a race snapshot to an
// image file with gonum/plot.
package trackplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"robotrace/internal/race"
	"robotrace/internal/track"
)

// Options controls sampling and output size.
type Options struct {
	Samples int       // points per lane around the loop
	Width   vg.Length // side of the square image
	Title   string
}

func DefaultOptions() Options {
	return Options{Samples: 400, Width: 8 * vg.Inch}
}

var (
	edgeColor = color.RGBA{R: 120, G: 96, B: 64, A: 255}
	laneColor = color.RGBA{R: 60, G: 66, B: 79, A: 255}
)

func materialColor(m race.Material) color.Color {
	switch m {
	case race.Gold:
		return color.RGBA{R: 192, G: 155, B: 58, A: 255}
	case race.Silver:
		return color.RGBA{R: 129, G: 129, B: 129, A: 255}
	case race.Wood:
		return color.RGBA{R: 133, G: 94, B: 66, A: 255}
	case race.Orange:
		return color.RGBA{R: 253, G: 131, B: 0, A: 255}
	}
	return color.Black
}

// Plot draws both track edges, every lane centerline and, when robots is not
// empty, each robot at its current position.
func Plot(res *track.Resolver, robots []*race.Robot, opts Options) (*plot.Plot, error) {
	if opts.Samples < 3 {
		return nil, fmt.Errorf("trackplot: need at least 3 samples, got %d", opts.Samples)
	}
	n := opts.Samples

	inner := make(plotter.XYs, 0, n+1)
	outer := make(plotter.XYs, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i%n) / float64(n)
		in, out, err := res.Edges(t)
		if err != nil {
			return nil, fmt.Errorf("trackplot: edges at t=%g: %w", t, err)
		}
		inner = append(inner, plotter.XY{X: in.X, Y: in.Y})
		outer = append(outer, plotter.XY{X: out.X, Y: out.Y})
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for _, pts := range []plotter.XYs{inner, outer} {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("trackplot: edge line: %w", err)
		}
		l.Color = edgeColor
		l.Width = vg.Points(1.5)
		p.Add(l)
	}

	for lane := 0; lane < res.Config().LaneCount; lane++ {
		pts := make(plotter.XYs, 0, n+1)
		for i := 0; i <= n; i++ {
			t := float64(i%n) / float64(n)
			q, err := res.LanePoint(lane, t)
			if err != nil {
				return nil, fmt.Errorf("trackplot: lane %d at t=%g: %w", lane, t, err)
			}
			pts = append(pts, plotter.XY{X: q.X, Y: q.Y})
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("trackplot: lane %d line: %w", lane, err)
		}
		l.Color = laneColor
		l.Width = vg.Points(0.5)
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(l)
	}

	for _, r := range robots {
		s, err := plotter.NewScatter(plotter.XYs{{X: r.Position.X, Y: r.Position.Y}})
		if err != nil {
			return nil, fmt.Errorf("trackplot: robot %s: %w", r.Name, err)
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  materialColor(r.Material),
			Radius: vg.Points(5),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("%s (lane %d)", r.Name, r.Lane), s)
	}
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	// Square data range so the track is not stretched.
	span := math.Max(p.X.Max-p.X.Min, p.Y.Max-p.Y.Min)
	cx, cy := (p.X.Min+p.X.Max)/2, (p.Y.Min+p.Y.Max)/2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2
	return p, nil
}

// Save plots res and robots and writes the image to path. The format follows
// the file extension (png, svg, pdf...).
func Save(path string, res *track.Resolver, robots []*race.Robot, opts Options) error {
	p, err := Plot(res, robots, opts)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Width, path); err != nil {
		return fmt.Errorf("trackplot: save %s: %w", path, err)
	}
	return nil
}
