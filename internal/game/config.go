package game

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Robot Race"
	DefaultZoom  = 18.0
	MinZoom      = 4.0
	MaxZoom      = 80.0
)

// Track drawing.
const (
	TrackSamples   = 400  // points per lane drawn around the loop
	TrackMargin    = 3.0  // world units left around the track when fitting the view
	AsphaltSize    = 1.35 // sprite size of one lane sample, in world units
	EdgeSize       = 0.35
	LaneMarkSize   = 0.12
	LaneMarkStride = 4 // draw every n-th sample of the lane separators
)

// Robot drawing.
const (
	RobotSize       = 0.9
	RobotGlowSize   = 2.6
	HeadingDistance = 0.9 // how far ahead of a robot its heading marker sits
	HeadingSize     = 0.25
)

// Sprite buffers: 8 floats per sprite (x, y, size, r, g, b, a, rotation).
const (
	SpriteFloats = 8
	MaxSprites   = 8192
)

// Animation speed limits for the +/- keys.
const (
	MinTimeScale = 0.25
	MaxTimeScale = 8.0
)
