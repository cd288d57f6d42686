package chart

import "image/color"

// Palette is a list of series colours, reused cyclically.
type Palette []color.NRGBA

// DefaultPalette is used by plots without a palette of their own.
var DefaultPalette = Palette{
	{R: 0x3b, G: 0x6e, B: 0xc4, A: 0xff},
	{R: 0xe0, G: 0x6c, B: 0x2d, A: 0xff},
	{R: 0x4c, G: 0xa8, B: 0x4f, A: 0xff},
	{R: 0xc9, G: 0x3a, B: 0x3a, A: 0xff},
	{R: 0x8e, G: 0x5e, B: 0xc2, A: 0xff},
	{R: 0xd8, G: 0xb5, B: 0x2a, A: 0xff},
	{R: 0x2a, G: 0xa3, B: 0xb8, A: 0xff},
	{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
}

// At returns the colour for index i.
func (p Palette) At(i int) color.NRGBA {
	if len(p) == 0 {
		return DefaultPalette.At(i)
	}
	return p[((i%len(p))+len(p))%len(p)]
}

// lerpColor interpolates between a and b; t is clamped to [0, 1].
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = min(max(t, 0), 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
