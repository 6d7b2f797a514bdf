// pkg/style/color.go
package style

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with a separate alpha channel. Channel values are
// in the [0, 1] range.
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color from sRGB channel values.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color from sRGB channel values plus alpha.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBLinear returns an opaque color from linear-space channel values.
func RGBLinear(r, g, b float32) Color {
	return RGBALinear(r, g, b, 1)
}

// RGBALinear returns a color from linear-space channel values plus alpha.
func RGBALinear(r, g, b, a float32) Color {
	c := colorful.LinearRgb(float64(r), float64(g), float64(b)).Clamped()
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: a}
}

// HSL returns an opaque color from hue (degrees), saturation and lightness.
func HSL(h, s, l float32) Color {
	return HSLA(h, s, l, 1)
}

// HSLA returns a color from hue (degrees), saturation, lightness and alpha.
func HSLA(h, s, l, a float32) Color {
	c := colorful.Hsl(float64(h), float64(s), float64(l)).Clamped()
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: a}
}

// Hex parses a color from hex notation: #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
// The leading '#' is optional.
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	for i := 0; i < len(h); i++ {
		if hexDigit(h[i]) < 0 {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
	}
	switch len(h) {
	case 3:
		return RGBA(hexChannel1(h[0]), hexChannel1(h[1]), hexChannel1(h[2]), 1), nil
	case 4:
		return RGBA(hexChannel1(h[0]), hexChannel1(h[1]), hexChannel1(h[2]), hexChannel1(h[3])), nil
	case 6:
		return RGBA(hexChannel2(h[0], h[1]), hexChannel2(h[2], h[3]), hexChannel2(h[4], h[5]), 1), nil
	case 8:
		return RGBA(hexChannel2(h[0], h[1]), hexChannel2(h[2], h[3]), hexChannel2(h[4], h[5]), hexChannel2(h[6], h[7])), nil
	}
	return Color{}, fmt.Errorf("invalid hex color %q", s)
}

// Lerp interpolates toward other by t in linear RGB space. Alpha is
// interpolated linearly.
func (c Color) Lerp(other Color, t float32) Color {
	a := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	b := colorful.Color{R: float64(other.R), G: float64(other.G), B: float64(other.B)}
	ar, ag, ab := a.LinearRgb()
	br, bg, bb := b.LinearRgb()
	f := float64(t)
	mixed := colorful.LinearRgb(ar+f*(br-ar), ag+f*(bg-ag), ab+f*(bb-ab)).Clamped()
	return Color{
		R: float32(mixed.R),
		G: float32(mixed.G),
		B: float32(mixed.B),
		A: c.A + (other.A-c.A)*t,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A))
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func hexDigit(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	}
	return -1
}

func hexChannel1(ch byte) float32 {
	d := hexDigit(ch)
	return float32(d*16+d) / 255
}

func hexChannel2(hi, lo byte) float32 {
	return float32(hexDigit(hi)*16+hexDigit(lo)) / 255
}
