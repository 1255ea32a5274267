package tint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var _ = fmt.Print

// AsSharp returns the color in CSS hex notation
func (c SrgbU8) AsSharp() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c SrgbaU8) AsSharp() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseSharp parses CSS hex notation: #rgb, #rgba, #rrggbb or #rrggbbaa.
// The leading # is optional. Missing alpha means opaque.
func ParseSharp(s string) (ans SrgbaU8, err error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, ch := range h {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		h = b.String()
	case 6, 8:
	default:
		return ans, fmt.Errorf("not a valid hex color: %#v", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return ans, fmt.Errorf("not a valid hex color: %#v", s)
	}
	return NewSrgbaU8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// RGBA implements color.Color
func (c SrgbU8) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 65535 // (255 << 8 | 255)
	return
}

// RGBA implements color.Color, premultiplying in the encoded domain as
// image/color expects
func (c SrgbaU8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func srgbModel(c color.Color) color.Color {
	if _, ok := c.(SrgbU8); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	switch a {
	case 0xffff:
		return NewSrgbU8(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	case 0:
		return SrgbU8{}
	default:
		// Since Color.RGBA returns an alpha-premultiplied color, we should have r <= a && g <= a && b <= a.
		r = (r * 0xffff) / a
		g = (g * 0xffff) / a
		b = (b * 0xffff) / a
		return NewSrgbU8(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

func srgbaModel(c color.Color) color.Color {
	if _, ok := c.(SrgbaU8); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewSrgbaU8(n.R, n.G, n.B, n.A)
}

// Models converting any color.Color, for example from an image.Image, to
// SrgbU8 and SrgbaU8
var (
	SrgbU8Model  color.Model = color.ModelFunc(srgbModel)
	SrgbaU8Model color.Model = color.ModelFunc(srgbaModel)
)

var _ color.Color = SrgbU8{}
var _ color.Color = SrgbaU8{}
