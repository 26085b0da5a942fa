package track

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Entry is a named track in a catalog.
type Entry struct {
	Name  string
	Curve Curve
}

// Catalog is the fixed set of tracks a race can switch between, addressed by
// index.
type Catalog struct {
	entries []Entry
}

// NewCatalog returns a catalog holding entries in order.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty track catalog", ErrConfiguration)
	}
	for i, e := range entries {
		if e.Curve == nil {
			return nil, fmt.Errorf("%w: track %d (%q) has no curve", ErrConfiguration, i, e.Name)
		}
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Catalog{entries: cp}, nil
}

func (c *Catalog) Len() int { return len(c.entries) }

// At returns the track at index i.
func (c *Catalog) At(i int) (Entry, error) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, fmt.Errorf("%w: track index %d out of range [0, %d]", ErrConfiguration, i, len(c.entries)-1)
	}
	return c.entries[i], nil
}

// Ground height of the default tracks.
const trackHeight = 1

// Default ellipse radii.
const (
	OvalRx = 10
	OvalRy = 14
)

// DefaultCatalog returns the two stock tracks: the oval and the
// counter-clockwise circuit built from nine cubic segments.
func DefaultCatalog() (*Catalog, error) {
	oval, err := NewEllipse(OvalRx, OvalRy, trackHeight)
	if err != nil {
		return nil, err
	}
	circuit, err := NewBezier(circuitPoints())
	if err != nil {
		return nil, err
	}
	return NewCatalog(
		Entry{Name: "oval", Curve: oval},
		Entry{Name: "circuit", Curve: circuit},
	)
}

func circuitPoints() []r3.Vec {
	xy := [][2]float64{
		{3, 16}, {-8, 17}, {-14, 14.6}, {-15.5, 10.5},
		{-15.5, 10.5}, {-17, 7}, {-15.5, 4}, {-14, 0.5},
		{-14, 0.5}, {-12.5, -2}, {-11.5, -5}, {-12, -8.5},
		{-12, -8.5}, {-13.5, -12}, {-12.5, -14.5}, {-3.5, -17.5},
		{-3.5, -17.5}, {1.5, -19}, {4.5, -17}, {7.5, -15},
		{7.5, -15}, {11, -11}, {12, -7.5}, {10, -5},
		{10, -5}, {7, -2.5}, {7.5, 2}, {11.5, 4.5},
		{11.5, 4.5}, {14, 6}, {16, 8}, {14, 12},
		{14, 12}, {12, 16}, {6, 17}, {3, 16},
	}
	pts := make([]r3.Vec, len(xy))
	for i, p := range xy {
		pts[i] = r3.Vec{X: p[0], Y: p[1], Z: trackHeight}
	}
	return pts
}
