package game

import "robotrace/internal/race"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the colour as normalized components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Ground   RGB
	Asphalt  RGB
	Edge     RGB
	LaneMark RGB
	Heading  RGB
	Gold     RGB
	Silver   RGB
	Wood     RGB
	Orange   RGB
}{
	Ground:   RGB{R: 92, G: 128, B: 70},
	Asphalt:  RGB{R: 60, G: 66, B: 79},
	Edge:     RGB{R: 214, G: 190, B: 153},
	LaneMark: RGB{R: 235, G: 235, B: 225},
	Heading:  RGB{R: 255, G: 245, B: 170},
	Gold:     RGB{R: 192, G: 155, B: 58},
	Silver:   RGB{R: 129, G: 129, B: 129},
	Wood:     RGB{R: 133, G: 94, B: 66},
	Orange:   RGB{R: 253, G: 131, B: 0},
}

// MaterialColor is the body colour of a robot drawn in material m.
func MaterialColor(m race.Material) RGB {
	switch m {
	case race.Gold:
		return Palette.Gold
	case race.Silver:
		return Palette.Silver
	case race.Wood:
		return Palette.Wood
	case race.Orange:
		return Palette.Orange
	}
	return Palette.LaneMark
}
