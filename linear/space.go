// Package linear defines linear RGB color spaces by their primaries and
// white point, and the matrices that relate them to the reference space:
// CIE XYZ with a D65 white.
package linear

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

type Chromaticity struct{ X, Y float64 }

type Primaries struct{ Red, Green, Blue Chromaticity }

// Standard illuminants as CIE 1931 xy chromaticities
var (
	D65  = Chromaticity{0.3127, 0.3290}
	D50  = Chromaticity{0.3457, 0.3585}
	ACES = Chromaticity{0.32168, 0.33767}
)

// XYZ returns the tristimulus values of c normalized so that Y = 1
func (c Chromaticity) XYZ() f64.Vec3 {
	return f64.Vec3{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}
}

// Bradford cone response matrix
var bradford = f64.Mat3{
	0.8951, 0.2664, -0.1614,
	-0.7502, 1.7135, 0.0367,
	0.0389, -0.0685, 1.0296,
}

var inv_bradford = func() f64.Mat3 {
	ans, err := Invert(&bradford)
	if err != nil {
		panic(err)
	}
	return ans
}()

// ChromaticAdaptation returns the Bradford matrix adapting XYZ values
// relative to src to XYZ values relative to dst.
func ChromaticAdaptation(src, dst Chromaticity) f64.Mat3 {
	if src == dst {
		return Identity
	}
	s := Apply(&bradford, src.XYZ())
	t := Apply(&bradford, dst.XYZ())
	d := diag(f64.Vec3{t[0] / s[0], t[1] / s[1], t[2] / s[2]})
	tmp := Mul(&d, &bradford)
	return Mul(&inv_bradford, &tmp)
}

// Space is a linear RGB color space. Its matrices map to and from CIE XYZ
// relative to D65, with chromatic adaptation folded in for spaces whose
// white point differs.
type Space struct {
	name             string
	primaries        Primaries
	white            Chromaticity
	to_xyz, from_xyz f64.Mat3
}

func (s *Space) Name() string             { return s.name }
func (s *Space) Primaries() Primaries     { return s.primaries }
func (s *Space) WhitePoint() Chromaticity { return s.white }
func (s *Space) ToXYZ() f64.Mat3          { return s.to_xyz }
func (s *Space) FromXYZ() f64.Mat3        { return s.from_xyz }
func (s *Space) String() string           { return s.name }

// RGBToXYZ returns the matrix mapping RGB in the given primaries to XYZ
// relative to the same white point.
func RGBToXYZ(p Primaries, white Chromaticity) (ans f64.Mat3, err error) {
	r, g, b := p.Red.XYZ(), p.Green.XYZ(), p.Blue.XYZ()
	if p.Red.Y == 0 || p.Green.Y == 0 || p.Blue.Y == 0 || white.Y == 0 {
		return ans, fmt.Errorf("chromaticities must have non-zero y: %v white: %v", p, white)
	}
	m := f64.Mat3{
		r[0], g[0], b[0],
		r[1], g[1], b[1],
		r[2], g[2], b[2],
	}
	inv, err := Invert(&m)
	if err != nil {
		return ans, fmt.Errorf("primaries %v are not linearly independent: %w", p, err)
	}
	sc := Apply(&inv, white.XYZ())
	d := diag(sc)
	return Mul(&m, &d), nil
}

func NewSpace(name string, p Primaries, white Chromaticity) (*Space, error) {
	m, err := RGBToXYZ(p, white)
	if err != nil {
		return nil, err
	}
	if white != D65 {
		adapt := ChromaticAdaptation(white, D65)
		m = Mul(&adapt, &m)
	}
	inv, err := Invert(&m)
	if err != nil {
		return nil, fmt.Errorf("the color space %s is degenerate: %w", name, err)
	}
	return &Space{name: name, primaries: p, white: white, to_xyz: m, from_xyz: inv}, nil
}

func MustNewSpace(name string, p Primaries, white Chromaticity) *Space {
	ans, err := NewSpace(name, p, white)
	if err != nil {
		panic(err)
	}
	return ans
}

var (
	Srgb = MustNewSpace("sRGB", Primaries{
		Chromaticity{0.64, 0.33}, Chromaticity{0.30, 0.60}, Chromaticity{0.15, 0.06}}, D65)
	AdobeRgb = MustNewSpace("Adobe RGB (1998)", Primaries{
		Chromaticity{0.64, 0.33}, Chromaticity{0.21, 0.71}, Chromaticity{0.15, 0.06}}, D65)
	ProPhotoRgb = MustNewSpace("ProPhoto RGB", Primaries{
		Chromaticity{0.7347, 0.2653}, Chromaticity{0.1596, 0.8404}, Chromaticity{0.0366, 0.0001}}, D50)
	DisplayP3 = MustNewSpace("Display P3", Primaries{
		Chromaticity{0.680, 0.320}, Chromaticity{0.265, 0.690}, Chromaticity{0.150, 0.060}}, D65)
	Bt2020 = MustNewSpace("BT.2020", Primaries{
		Chromaticity{0.708, 0.292}, Chromaticity{0.170, 0.797}, Chromaticity{0.131, 0.046}}, D65)
	AcesCg = MustNewSpace("ACEScg", Primaries{
		Chromaticity{0.713, 0.293}, Chromaticity{0.165, 0.830}, Chromaticity{0.128, 0.044}}, ACES)
	Aces2065 = MustNewSpace("ACES2065-1", Primaries{
		Chromaticity{0.7347, 0.2653}, Chromaticity{0.0, 1.0}, Chromaticity{0.0001, -0.0770}}, ACES)
	// CieXyz is the reference space itself
	CieXyz = &Space{name: "CIE XYZ", white: D65, to_xyz: Identity, from_xyz: Identity}
)

// Builtin returns the predefined spaces
func Builtin() []*Space {
	return []*Space{Srgb, AdobeRgb, ProPhotoRgb, DisplayP3, Bt2020, AcesCg, Aces2065, CieXyz}
}
