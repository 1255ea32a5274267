/*
Package tint converts colors between encodings: 8-bit gamma encoded RGB,
float gamma encoded RGB, linear RGB in several primaries and the Oklab
perceptual space.

Every encoding is its own Go type, so a color always carries its encoding
at compile time. Display encodings such as SrgbU8 are for storage and
transport. Working encodings such as LinearSrgb and Oklab are linear (or
perceptually uniform) and only they are accepted by the arithmetic
functions Add, Scale, Lerp and friends. Use Convert to move between any
two encodings:

	c := tint.NewSrgbU8(102, 54, 220)
	lin := tint.Convert[tint.LinearSrgb](c)
	lin = tint.Scale(lin, 0.5)
	out := tint.Convert[tint.SrgbU8](lin)

Conversions never fail. Values out of range of an 8-bit encoding are
rounded half away from zero and clamped, un-premultiplying a color with an
alpha of zero gives zero color channels and non-finite float values
propagate. ConvertSlice and ConvertAll convert large slices in parallel.
*/
package tint

import "fmt"

type TintVersion struct {
	Major, Minor, Patch uint
}

func (v TintVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v TintVersion) Equal(o TintVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v TintVersion) After(o TintVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v TintVersion) Before(o TintVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = TintVersion{0, 3, 0}
