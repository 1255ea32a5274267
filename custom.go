package tint

import (
	"fmt"

	"github.com/kovidgoyal/tint/linear"
	"github.com/kovidgoyal/tint/oklab"
	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

// CustomSpace creates a linear RGB space from arbitrary primaries and white
// point, for colors that have no encoding type of their own.
func CustomSpace(name string, p linear.Primaries, white linear.Chromaticity) (*linear.Space, error) {
	ans, err := linear.NewSpace(name, p, white)
	if err != nil {
		return nil, err
	}
	Logger().Debug("created custom color space", "name", name, "to_xyz", ans.ToXYZ(), "from_xyz", ans.FromXYZ())
	return ans, nil
}

// DynamicColor is a linear RGB color whose space is only known at runtime.
// A nil Space means CIE XYZ.
type DynamicColor struct {
	Value f64.Vec3
	Space *linear.Space
}

func space_or_xyz(s *linear.Space) *linear.Space {
	if s == nil {
		return linear.CieXyz
	}
	return s
}

func (d DynamicColor) String() string {
	return fmt.Sprintf("DynamicColor{%v %v %v in %s}", d.Value[0], d.Value[1], d.Value[2], d.Space)
}

// ToEncoding converts d to the encoding E with an alpha of 1
func ToEncoding[E Encoding[E]](d DynamicColor) E {
	var ans E
	dst := ans.descriptor()
	p := pixel{v: linear.Convert(space_or_xyz(d.Space), dst.Space, d.Value), alpha: 1}
	if dst.Perceptual {
		p.v = oklab.FromXYZ(p.v)
	}
	if dst.Alpha == Premultiplied {
		premultiply(&p)
	}
	return ans.fromComponents(encode(dst, p))
}

// FromEncoding converts c to linear RGB in space, or to CIE XYZ if space is
// nil. Alpha is discarded after un-premultiplying.
func FromEncoding[E Encoding[E]](c E, space *linear.Space) DynamicColor {
	space = space_or_xyz(space)
	src := c.descriptor()
	p := decode(src, c.components())
	if src.Alpha == Premultiplied {
		unpremultiply(&p)
	}
	if src.Perceptual {
		p.v = oklab.ToXYZ(p.v)
	}
	return DynamicColor{Value: linear.Convert(src.Space, space, p.v), Space: space}
}
