package internal

import "github.com/veandco/go-sdl2/sdl"

// HexToColor converts a 0xRRGGBB value to an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// WithAlpha returns the color with the given alpha channel.
func WithAlpha(c sdl.Color, a uint8) sdl.Color {
	c.A = a
	return c
}
