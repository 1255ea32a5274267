// Package transfer implements the nonlinear transfer functions that map
// between linear light and the stored values of display encodings.
//
// Decode is the EOTF (stored value to linear light) and Encode is the OETF
// (linear light to stored value). All curves are odd-extended so that
// negative inputs, which arise from out of gamut conversions, map to
// finite outputs instead of NaN.
package transfer

import (
	"fmt"
	"math"
)

var _ = fmt.Print

type Function interface {
	Decode(x float64) float64
	Encode(x float64) float64
	String() string
}

type IdentityCurve int

// GammaCurve is Y = X^g
type GammaCurve struct {
	gamma, inv_gamma float64
}

// SplitCurve is Y = (aX+b)^g for X >= d else cX, in the decode direction.
// This is ICC parametric curve type 3.
type SplitCurve struct {
	name                   string
	g, a, b, c, d          float64
	inv_g, inv_a, inv_c, t float64
}

var _ Function = IdentityCurve(0)
var _ Function = (*GammaCurve)(nil)
var _ Function = (*SplitCurve)(nil)

var (
	// SRGB is the IEC 61966-2-1 sRGB curve
	SRGB = MustSplitCurve("sRGB", 2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045)
	// ProPhoto is the ROMM RGB curve with its linear toe
	ProPhoto = MustSplitCurve("ProPhoto", 1.8, 1, 0, 1.0/16, 1.0/32)
	// AdobeRGB is the pure power curve of Adobe RGB (1998)
	AdobeRGB = MustGammaCurve(563.0 / 256.0)
)

func odd(x float64, f func(float64) float64) float64 {
	if x < 0 {
		return -f(-x)
	}
	return f(x)
}

func (c IdentityCurve) Decode(x float64) float64 { return x }
func (c IdentityCurve) Encode(x float64) float64 { return x }
func (c IdentityCurve) String() string           { return "IdentityCurve{}" }

func NewGammaCurve(gamma float64) (*GammaCurve, error) {
	if gamma <= 0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return nil, fmt.Errorf("gamma curve must have a finite positive gamma, not: %v", gamma)
	}
	return &GammaCurve{gamma: gamma, inv_gamma: 1 / gamma}, nil
}

func MustGammaCurve(gamma float64) *GammaCurve {
	ans, err := NewGammaCurve(gamma)
	if err != nil {
		panic(err)
	}
	return ans
}

func (c *GammaCurve) Decode(x float64) float64 {
	return odd(x, func(x float64) float64 { return math.Pow(x, c.gamma) })
}

func (c *GammaCurve) Encode(x float64) float64 {
	return odd(x, func(x float64) float64 { return math.Pow(x, c.inv_gamma) })
}

func (c *GammaCurve) String() string { return fmt.Sprintf("GammaCurve{%v}", c.gamma) }

func NewSplitCurve(name string, g, a, b, c, d float64) (*SplitCurve, error) {
	if a == 0 || g == 0 || c == 0 {
		return nil, fmt.Errorf("split curve %s has zero parameter value: a=%f or g=%f or c=%f", name, a, g, c)
	}
	// the encode direction switches segments at the image of d under the
	// linear segment, so that values on the linear toe round trip exactly
	return &SplitCurve{name: name, g: g, a: a, b: b, c: c, d: d, inv_g: 1 / g, inv_a: 1 / a, inv_c: 1 / c, t: c * d}, nil
}

func MustSplitCurve(name string, g, a, b, c, d float64) *SplitCurve {
	ans, err := NewSplitCurve(name, g, a, b, c, d)
	if err != nil {
		panic(err)
	}
	return ans
}

func (c *SplitCurve) decode(x float64) float64 {
	if x >= c.d {
		if e := c.a*x + c.b; e > 0 {
			return math.Pow(e, c.g)
		}
		return 0
	}
	return c.c * x
}

func (c *SplitCurve) encode(y float64) float64 {
	if y < c.t {
		return y * c.inv_c
	}
	return (math.Pow(y, c.inv_g) - c.b) * c.inv_a
}

func (c *SplitCurve) Decode(x float64) float64 { return odd(x, c.decode) }
func (c *SplitCurve) Encode(y float64) float64 { return odd(y, c.encode) }

func (c *SplitCurve) String() string {
	return fmt.Sprintf("SplitCurve{%s a: %v b: %v c: %v d: %v g: %v}", c.name, c.a, c.b, c.c, c.d, c.g)
}
