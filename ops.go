package tint

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/tint/linear"
	"github.com/kovidgoyal/tint/oklab"
)

var _ = fmt.Print

// Working is implemented by the encodings that are linear with respect to
// light, or perceptually uniform, and so are meaningful to do arithmetic
// in. Display encodings such as SrgbU8 do not implement it, so the
// arithmetic functions below do not compile for them.
type Working[E any] interface {
	Encoding[E]
	working()
}

// Perceptual is implemented by perceptually uniform working encodings
type Perceptual[E any] interface {
	Working[E]
	perceptual()
}

// Alpha is implemented by encodings that carry an alpha channel
type Alpha[E any] interface {
	Encoding[E]
	alpha()
}

func zip[E Encoding[E]](a, b E, op func(x, y float64) float64) E {
	x, y := a.components(), b.components()
	for i := range x {
		x[i] = op(x[i], y[i])
	}
	return a.fromComponents(x)
}

func each[E Encoding[E]](a E, op func(x float64) float64) E {
	x := a.components()
	for i := range x {
		x[i] = op(x[i])
	}
	return a.fromComponents(x)
}

// Add returns a+b, channel by channel, including alpha
func Add[E Working[E]](a, b E) E {
	return zip(a, b, func(x, y float64) float64 { return x + y })
}

func Sub[E Working[E]](a, b E) E {
	return zip(a, b, func(x, y float64) float64 { return x - y })
}

// Mul multiplies a and b channel by channel, for example to apply a filter
func Mul[E Working[E]](a, b E) E {
	return zip(a, b, func(x, y float64) float64 { return x * y })
}

func Scale[E Working[E]](a E, s float64) E {
	return each(a, func(x float64) float64 { return x * s })
}

func Div[E Working[E]](a E, s float64) E {
	return each(a, func(x float64) float64 { return x / s })
}

// Lerp interpolates linearly from a at t = 0 to b at t = 1
func Lerp[E Working[E]](a, b E, t float64) E {
	return zip(a, b, func(x, y float64) float64 { return x + (y-x)*t })
}

// PerceptualBlend interpolates in a perceptually uniform encoding, giving
// gradients whose steps look evenly spaced.
func PerceptualBlend[E Perceptual[E]](a, b E, t float64) E {
	return Lerp(a, b, t)
}

// AlphaOf returns the alpha of c normalized to [0, 1]
func AlphaOf[E Alpha[E]](c E) float64 {
	a := c.components()[3]
	if c.descriptor().Element == Uint8 {
		a /= 255
	}
	return a
}

// Over composites src over dst using the Porter-Duff source over operator.
// The compositing is done in premultiplied linear sRGB, whatever the
// encodings of the inputs.
func Over[E Alpha[E]](src, dst E) E {
	s := Convert[LinearSrgbaPremultiplied](src)
	d := Convert[LinearSrgbaPremultiplied](dst)
	k := 1 - s.A
	r := NewLinearSrgbaPremultiplied(s.R+d.R*k, s.G+d.G*k, s.B+d.B*k, s.A+d.A*k)
	return Convert[E](r)
}

// ApproxEqual reports whether every channel of a and b differs by at most eps
func ApproxEqual[E Encoding[E]](a, b E, eps float64) bool {
	x, y := a.components(), b.components()
	for i := range a.descriptor().Channels {
		if !(math.Abs(x[i]-y[i]) <= eps) {
			return false
		}
	}
	return true
}

// Luminance returns the relative luminance of c, the Y of CIE XYZ
func Luminance[E Encoding[E]](c E) float64 {
	d := c.descriptor()
	p := decode(d, c.components())
	if d.Alpha == Premultiplied {
		unpremultiply(&p)
	}
	if d.Perceptual {
		p.v = oklab.ToXYZ(p.v)
	}
	return linear.Convert(d.Space, linear.CieXyz, p.v)[1]
}
