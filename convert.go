package tint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kovidgoyal/tint/linear"
	"github.com/kovidgoyal/tint/oklab"
	"github.com/kovidgoyal/tint/transfer"
	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

// Encoding is implemented by every color encoding type in this package and
// cannot be implemented outside it. Self is the implementing type.
type Encoding[Self any] interface {
	comparable
	Descriptor() Descriptor
	String() string
	descriptor() *Descriptor
	// raw channel values in storage order, unused trailing entries are zero
	components() [4]float64
	fromComponents([4]float64) Self
}

// pixel is a color decoded to linear light in the space of its encoding
type pixel struct {
	v     f64.Vec3
	alpha float64
}

func decode(d *Descriptor, raw [4]float64) (p pixel) {
	p.alpha = 1
	if d.HasAlpha() {
		p.alpha = raw[3]
		if d.Element == Uint8 {
			p.alpha = transfer.FromUint8(uint8(raw[3]))
		}
	}
	switch {
	case d.Transfer == nil:
		p.v = f64.Vec3{raw[0], raw[1], raw[2]}
	case d.Element == Uint8:
		for i := range 3 {
			p.v[i] = transfer.DecodeUint8(d.Transfer, uint8(raw[i]))
		}
	default:
		for i := range 3 {
			p.v[i] = d.Transfer.Decode(raw[i])
		}
	}
	return
}

func encode(d *Descriptor, p pixel) (raw [4]float64) {
	if d.Transfer != nil {
		for i := range 3 {
			raw[i] = d.Transfer.Encode(p.v[i])
		}
	} else {
		raw[0], raw[1], raw[2] = p.v[0], p.v[1], p.v[2]
	}
	if d.HasAlpha() {
		raw[3] = p.alpha
	}
	if d.Element == Uint8 {
		for i := range d.Channels {
			raw[i] *= 255
		}
	}
	return
}

func unpremultiply(p *pixel) {
	if p.alpha == 0 {
		p.v = f64.Vec3{}
		return
	}
	for i := range 3 {
		p.v[i] /= p.alpha
	}
}

func premultiply(p *pixel) {
	for i := range 3 {
		p.v[i] *= p.alpha
	}
}

// transform moves linear values from the space of src to the space of dst
func transform(src, dst *Descriptor, v f64.Vec3) f64.Vec3 {
	if src.Perceptual {
		v = oklab.ToXYZ(v)
	}
	v = linear.Convert(src.Space, dst.Space, v)
	if dst.Perceptual {
		v = oklab.FromXYZ(v)
	}
	return v
}

func convert_pixel(src, dst *Descriptor, p pixel) pixel {
	src_pm, dst_pm := src.Alpha == Premultiplied, dst.Alpha == Premultiplied
	if src_pm && !dst_pm {
		unpremultiply(&p)
	}
	if src != dst {
		p.v = transform(src, dst, p.v)
	}
	if dst_pm && !src_pm {
		premultiply(&p)
	}
	return p
}

// Convert converts a color from the encoding A to the encoding B. It is
// defined for every pair of encodings and never fails: values outside the
// range of an 8-bit target are clamped and non-finite floats propagate.
//
//	lin := tint.Convert[tint.LinearSrgb](tint.NewSrgbU8(102, 54, 220))
func Convert[B Encoding[B], A Encoding[A]](a A) B {
	if b, ok := any(a).(B); ok {
		return b
	}
	var b B
	src, dst := a.descriptor(), b.descriptor()
	p := convert_pixel(src, dst, decode(src, a.components()))
	return b.fromComponents(encode(dst, p))
}

// FromComponents creates a color from raw channel values in the native
// layout of E: 0 to 255 for 8-bit encodings, unscaled floats otherwise.
// 8-bit values are rounded and clamped.
func FromComponents[E Encoding[E]](values ...float64) (ans E, err error) {
	d := ans.descriptor()
	if len(values) != d.Channels {
		return ans, fmt.Errorf("%s has %d channels, %d values given", d.Name, d.Channels, len(values))
	}
	var raw [4]float64
	copy(raw[:], values)
	return ans.fromComponents(raw), nil
}

func MustFromComponents[E Encoding[E]](values ...float64) E {
	ans, err := FromComponents[E](values...)
	if err != nil {
		panic(err)
	}
	return ans
}

// Components returns the raw channel values of c in storage order
func Components[E Encoding[E]](c E) []float64 {
	raw := c.components()
	return append([]float64(nil), raw[:c.descriptor().Channels]...)
}

func format[E Encoding[E]](c E) string {
	d := c.descriptor()
	raw := c.components()
	parts := make([]string, d.Channels)
	for i := range parts {
		if d.Element == Uint8 {
			parts[i] = strconv.Itoa(int(raw[i]))
		} else {
			parts[i] = strconv.FormatFloat(raw[i], 'g', -1, 32)
		}
	}
	return d.Name + "(" + strings.Join(parts, ", ") + ")"
}
