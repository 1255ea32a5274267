// Package oklab implements the Oklab perceptual color space relative to
// CIE XYZ with a D65 white.
package oklab

import (
	"math"

	"github.com/kovidgoyal/tint/linear"
	"golang.org/x/image/math/f64"
)

// M1 maps XYZ to approximate cone responses
var M1 = f64.Mat3{
	0.8189330101, 0.3618667424, -0.1288597137,
	0.0329845436, 0.9293118715, 0.0361456387,
	0.0482003018, 0.2643662691, 0.6338517070,
}

// M2 maps compressed cone responses to L, a, b
var M2 = f64.Mat3{
	0.2104542553, 0.7936177850, -0.0040720468,
	1.9779984951, -2.4285922050, 0.4505937099,
	0.0259040371, 0.7827717662, -0.8086757660,
}

var inv_m1, inv_m2 = must_invert(&M1), must_invert(&M2)

func must_invert(m *f64.Mat3) f64.Mat3 {
	ans, err := linear.Invert(m)
	if err != nil {
		panic(err)
	}
	return ans
}

// FromXYZ converts XYZ (D65) to Oklab
func FromXYZ(v f64.Vec3) f64.Vec3 {
	lms := linear.Apply(&M1, v)
	for i, x := range lms {
		lms[i] = math.Cbrt(x)
	}
	return linear.Apply(&M2, lms)
}

// ToXYZ converts Oklab to XYZ (D65)
func ToXYZ(v f64.Vec3) f64.Vec3 {
	lms := linear.Apply(&inv_m2, v)
	for i, x := range lms {
		lms[i] = x * x * x
	}
	return linear.Apply(&inv_m1, lms)
}

// Chroma and hue (in radians) of an Oklab color, i.e. its polar form
func ToLCh(v f64.Vec3) (l, c, h float64) {
	return v[0], math.Hypot(v[1], v[2]), math.Atan2(v[2], v[1])
}

func FromLCh(l, c, h float64) f64.Vec3 {
	s, co := math.Sincos(h)
	return f64.Vec3{l, c * co, c * s}
}
