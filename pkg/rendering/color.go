package rendering

import "image/color"

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// NRGBA converts to the image/color representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// Palette holds the colors used by the image renderer.
type Palette struct {
	Background   Color
	ButtonFill   Color
	ButtonBorder Color
	ButtonText   Color
}

// DefaultPalette approximates the stock light theme.
var DefaultPalette = Palette{
	Background:   RGB(0xFA, 0xFA, 0xFA),
	ButtonFill:   RGB(0xD6, 0xD7, 0xD7),
	ButtonBorder: RGB(0x9E, 0x9E, 0x9E),
	ButtonText:   RGB(0x21, 0x21, 0x21),
}
