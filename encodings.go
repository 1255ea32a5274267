package tint

import (
	"fmt"
)

var _ = fmt.Print

// SrgbU8 is 8-bit gamma encoded sRGB, the encoding of most images and of
// CSS hex colors. It is a display encoding.
type SrgbU8 struct{ Rgb[uint8] }

func NewSrgbU8(r, g, b uint8) SrgbU8              { return SrgbU8{Rgb[uint8]{r, g, b}} }
func (SrgbU8) Descriptor() Descriptor             { return descriptors[SRGB_U8] }
func (SrgbU8) descriptor() *Descriptor            { return &descriptors[SRGB_U8] }
func (c SrgbU8) String() string                   { return format(c) }
func (SrgbU8) fromComponents(v [4]float64) SrgbU8 { return SrgbU8{rgbFrom[uint8](v)} }

// SrgbF32 is gamma encoded sRGB with float channels in [0, 1].
type SrgbF32 struct{ Rgb[float32] }

func NewSrgbF32(r, g, b float32) SrgbF32            { return SrgbF32{Rgb[float32]{r, g, b}} }
func (SrgbF32) Descriptor() Descriptor              { return descriptors[SRGB_F32] }
func (SrgbF32) descriptor() *Descriptor             { return &descriptors[SRGB_F32] }
func (c SrgbF32) String() string                    { return format(c) }
func (SrgbF32) fromComponents(v [4]float64) SrgbF32 { return SrgbF32{rgbFrom[float32](v)} }

// SrgbaU8 is 8-bit gamma encoded sRGB with a separate linear alpha channel.
type SrgbaU8 struct{ Rgba[uint8] }

func NewSrgbaU8(r, g, b, a uint8) SrgbaU8           { return SrgbaU8{Rgba[uint8]{r, g, b, a}} }
func (SrgbaU8) Descriptor() Descriptor              { return descriptors[SRGBA_U8] }
func (SrgbaU8) descriptor() *Descriptor             { return &descriptors[SRGBA_U8] }
func (c SrgbaU8) String() string                    { return format(c) }
func (SrgbaU8) fromComponents(v [4]float64) SrgbaU8 { return SrgbaU8{rgbaFrom[uint8](v)} }
func (SrgbaU8) alpha()                              {}

type SrgbaF32 struct{ Rgba[float32] }

func NewSrgbaF32(r, g, b, a float32) SrgbaF32         { return SrgbaF32{Rgba[float32]{r, g, b, a}} }
func (SrgbaF32) Descriptor() Descriptor               { return descriptors[SRGBA_F32] }
func (SrgbaF32) descriptor() *Descriptor              { return &descriptors[SRGBA_F32] }
func (c SrgbaF32) String() string                     { return format(c) }
func (SrgbaF32) fromComponents(v [4]float64) SrgbaF32 { return SrgbaF32{rgbaFrom[float32](v)} }
func (SrgbaF32) alpha()                               {}

// SrgbaPremultipliedU8 is 8-bit sRGB whose color channels were multiplied by
// alpha in linear light before the sRGB curve was applied.
type SrgbaPremultipliedU8 struct{ Rgba[uint8] }

func NewSrgbaPremultipliedU8(r, g, b, a uint8) SrgbaPremultipliedU8 {
	return SrgbaPremultipliedU8{Rgba[uint8]{r, g, b, a}}
}
func (SrgbaPremultipliedU8) Descriptor() Descriptor  { return descriptors[SRGBA_PREMULTIPLIED_U8] }
func (SrgbaPremultipliedU8) descriptor() *Descriptor { return &descriptors[SRGBA_PREMULTIPLIED_U8] }
func (c SrgbaPremultipliedU8) String() string        { return format(c) }
func (SrgbaPremultipliedU8) fromComponents(v [4]float64) SrgbaPremultipliedU8 {
	return SrgbaPremultipliedU8{rgbaFrom[uint8](v)}
}
func (SrgbaPremultipliedU8) alpha() {}

// LinearSrgb is linear light with BT.709 primaries and a D65 white. It is
// the default working encoding.
type LinearSrgb struct{ Rgb[float32] }

func NewLinearSrgb(r, g, b float32) LinearSrgb            { return LinearSrgb{Rgb[float32]{r, g, b}} }
func (LinearSrgb) Descriptor() Descriptor                 { return descriptors[LINEAR_SRGB] }
func (LinearSrgb) descriptor() *Descriptor                { return &descriptors[LINEAR_SRGB] }
func (c LinearSrgb) String() string                       { return format(c) }
func (LinearSrgb) fromComponents(v [4]float64) LinearSrgb { return LinearSrgb{rgbFrom[float32](v)} }
func (LinearSrgb) working()                               {}

type LinearSrgba struct{ Rgba[float32] }

func NewLinearSrgba(r, g, b, a float32) LinearSrgba         { return LinearSrgba{Rgba[float32]{r, g, b, a}} }
func (LinearSrgba) Descriptor() Descriptor                  { return descriptors[LINEAR_SRGBA] }
func (LinearSrgba) descriptor() *Descriptor                 { return &descriptors[LINEAR_SRGBA] }
func (c LinearSrgba) String() string                        { return format(c) }
func (LinearSrgba) fromComponents(v [4]float64) LinearSrgba { return LinearSrgba{rgbaFrom[float32](v)} }
func (LinearSrgba) working()                                {}
func (LinearSrgba) alpha()                                  {}

// LinearSrgbaPremultiplied is the encoding to use for compositing.
type LinearSrgbaPremultiplied struct{ Rgba[float32] }

func NewLinearSrgbaPremultiplied(r, g, b, a float32) LinearSrgbaPremultiplied {
	return LinearSrgbaPremultiplied{Rgba[float32]{r, g, b, a}}
}
func (LinearSrgbaPremultiplied) Descriptor() Descriptor {
	return descriptors[LINEAR_SRGBA_PREMULTIPLIED]
}
func (LinearSrgbaPremultiplied) descriptor() *Descriptor {
	return &descriptors[LINEAR_SRGBA_PREMULTIPLIED]
}
func (c LinearSrgbaPremultiplied) String() string { return format(c) }
func (LinearSrgbaPremultiplied) fromComponents(v [4]float64) LinearSrgbaPremultiplied {
	return LinearSrgbaPremultiplied{rgbaFrom[float32](v)}
}
func (LinearSrgbaPremultiplied) working() {}
func (LinearSrgbaPremultiplied) alpha()   {}

// Oklab is the Oklab perceptual space. Interpolating in it gives more
// visually even gradients than interpolating in linear RGB.
type Oklab struct{ Lab[float32] }

func NewOklab(l, a, b float32) Oklab            { return Oklab{Lab[float32]{l, a, b}} }
func (Oklab) Descriptor() Descriptor            { return descriptors[OKLAB] }
func (Oklab) descriptor() *Descriptor           { return &descriptors[OKLAB] }
func (c Oklab) String() string                  { return format(c) }
func (Oklab) fromComponents(v [4]float64) Oklab { return Oklab{labFrom[float32](v)} }
func (Oklab) working()                          {}
func (Oklab) perceptual()                       {}

type LinearAdobeRgb struct{ Rgb[float32] }

func NewLinearAdobeRgb(r, g, b float32) LinearAdobeRgb { return LinearAdobeRgb{Rgb[float32]{r, g, b}} }
func (LinearAdobeRgb) Descriptor() Descriptor          { return descriptors[LINEAR_ADOBE_RGB] }
func (LinearAdobeRgb) descriptor() *Descriptor         { return &descriptors[LINEAR_ADOBE_RGB] }
func (c LinearAdobeRgb) String() string                { return format(c) }
func (LinearAdobeRgb) fromComponents(v [4]float64) LinearAdobeRgb {
	return LinearAdobeRgb{rgbFrom[float32](v)}
}
func (LinearAdobeRgb) working() {}

// AdobeRgbU8 is 8-bit Adobe RGB (1998)
type AdobeRgbU8 struct{ Rgb[uint8] }

func NewAdobeRgbU8(r, g, b uint8) AdobeRgbU8              { return AdobeRgbU8{Rgb[uint8]{r, g, b}} }
func (AdobeRgbU8) Descriptor() Descriptor                 { return descriptors[ADOBE_RGB_U8] }
func (AdobeRgbU8) descriptor() *Descriptor                { return &descriptors[ADOBE_RGB_U8] }
func (c AdobeRgbU8) String() string                       { return format(c) }
func (AdobeRgbU8) fromComponents(v [4]float64) AdobeRgbU8 { return AdobeRgbU8{rgbFrom[uint8](v)} }

type LinearProPhotoRgb struct{ Rgb[float32] }

func NewLinearProPhotoRgb(r, g, b float32) LinearProPhotoRgb {
	return LinearProPhotoRgb{Rgb[float32]{r, g, b}}
}
func (LinearProPhotoRgb) Descriptor() Descriptor  { return descriptors[LINEAR_PROPHOTO_RGB] }
func (LinearProPhotoRgb) descriptor() *Descriptor { return &descriptors[LINEAR_PROPHOTO_RGB] }
func (c LinearProPhotoRgb) String() string        { return format(c) }
func (LinearProPhotoRgb) fromComponents(v [4]float64) LinearProPhotoRgb {
	return LinearProPhotoRgb{rgbFrom[float32](v)}
}
func (LinearProPhotoRgb) working() {}

// ProPhotoRgbU8 is 8-bit ROMM RGB. Its white point is D50.
type ProPhotoRgbU8 struct{ Rgb[uint8] }

func NewProPhotoRgbU8(r, g, b uint8) ProPhotoRgbU8 { return ProPhotoRgbU8{Rgb[uint8]{r, g, b}} }
func (ProPhotoRgbU8) Descriptor() Descriptor       { return descriptors[PROPHOTO_RGB_U8] }
func (ProPhotoRgbU8) descriptor() *Descriptor      { return &descriptors[PROPHOTO_RGB_U8] }
func (c ProPhotoRgbU8) String() string             { return format(c) }
func (ProPhotoRgbU8) fromComponents(v [4]float64) ProPhotoRgbU8 {
	return ProPhotoRgbU8{rgbFrom[uint8](v)}
}

type LinearDisplayP3 struct{ Rgb[float32] }

func NewLinearDisplayP3(r, g, b float32) LinearDisplayP3 {
	return LinearDisplayP3{Rgb[float32]{r, g, b}}
}
func (LinearDisplayP3) Descriptor() Descriptor  { return descriptors[LINEAR_DISPLAY_P3] }
func (LinearDisplayP3) descriptor() *Descriptor { return &descriptors[LINEAR_DISPLAY_P3] }
func (c LinearDisplayP3) String() string        { return format(c) }
func (LinearDisplayP3) fromComponents(v [4]float64) LinearDisplayP3 {
	return LinearDisplayP3{rgbFrom[float32](v)}
}
func (LinearDisplayP3) working() {}

// DisplayP3U8 is 8-bit Display P3, which uses the sRGB curve.
type DisplayP3U8 struct{ Rgb[uint8] }

func NewDisplayP3U8(r, g, b uint8) DisplayP3U8              { return DisplayP3U8{Rgb[uint8]{r, g, b}} }
func (DisplayP3U8) Descriptor() Descriptor                  { return descriptors[DISPLAY_P3_U8] }
func (DisplayP3U8) descriptor() *Descriptor                 { return &descriptors[DISPLAY_P3_U8] }
func (c DisplayP3U8) String() string                        { return format(c) }
func (DisplayP3U8) fromComponents(v [4]float64) DisplayP3U8 { return DisplayP3U8{rgbFrom[uint8](v)} }

type LinearBt2020 struct{ Rgb[float32] }

func NewLinearBt2020(r, g, b float32) LinearBt2020 { return LinearBt2020{Rgb[float32]{r, g, b}} }
func (LinearBt2020) Descriptor() Descriptor        { return descriptors[LINEAR_BT2020] }
func (LinearBt2020) descriptor() *Descriptor       { return &descriptors[LINEAR_BT2020] }
func (c LinearBt2020) String() string              { return format(c) }
func (LinearBt2020) fromComponents(v [4]float64) LinearBt2020 {
	return LinearBt2020{rgbFrom[float32](v)}
}
func (LinearBt2020) working() {}

// AcesCg is linear light in the ACES AP1 primaries
type AcesCg struct{ Rgb[float32] }

func NewAcesCg(r, g, b float32) AcesCg            { return AcesCg{Rgb[float32]{r, g, b}} }
func (AcesCg) Descriptor() Descriptor             { return descriptors[ACES_CG] }
func (AcesCg) descriptor() *Descriptor            { return &descriptors[ACES_CG] }
func (c AcesCg) String() string                   { return format(c) }
func (AcesCg) fromComponents(v [4]float64) AcesCg { return AcesCg{rgbFrom[float32](v)} }
func (AcesCg) working()                           {}

// Aces2065 is linear light in the ACES AP0 primaries, the ACES interchange
// encoding.
type Aces2065 struct{ Rgb[float32] }

func NewAces2065(r, g, b float32) Aces2065            { return Aces2065{Rgb[float32]{r, g, b}} }
func (Aces2065) Descriptor() Descriptor               { return descriptors[ACES_2065] }
func (Aces2065) descriptor() *Descriptor              { return &descriptors[ACES_2065] }
func (c Aces2065) String() string                     { return format(c) }
func (Aces2065) fromComponents(v [4]float64) Aces2065 { return Aces2065{rgbFrom[float32](v)} }
func (Aces2065) working()                             {}

func is_encoding[E Encoding[E]]() {}
func is_working[E Working[E]]()   {}
func has_alpha[E Alpha[E]]()      {}

// compile time checks of the capabilities of each encoding
var _ = []func(){
	is_encoding[SrgbU8],
	is_encoding[SrgbF32],
	is_encoding[SrgbaU8],
	is_encoding[SrgbaF32],
	is_encoding[SrgbaPremultipliedU8],
	is_encoding[LinearSrgb],
	is_encoding[LinearSrgba],
	is_encoding[LinearSrgbaPremultiplied],
	is_encoding[Oklab],
	is_encoding[LinearAdobeRgb],
	is_encoding[AdobeRgbU8],
	is_encoding[LinearProPhotoRgb],
	is_encoding[ProPhotoRgbU8],
	is_encoding[LinearDisplayP3],
	is_encoding[DisplayP3U8],
	is_encoding[LinearBt2020],
	is_encoding[AcesCg],
	is_encoding[Aces2065],
	is_working[LinearSrgb],
	is_working[LinearSrgba],
	is_working[LinearSrgbaPremultiplied],
	is_working[Oklab],
	is_working[LinearAdobeRgb],
	is_working[LinearProPhotoRgb],
	is_working[LinearDisplayP3],
	is_working[LinearBt2020],
	is_working[AcesCg],
	is_working[Aces2065],
	has_alpha[SrgbaU8],
	has_alpha[SrgbaF32],
	has_alpha[SrgbaPremultipliedU8],
	has_alpha[LinearSrgba],
	has_alpha[LinearSrgbaPremultiplied],
}

var _ = PerceptualBlend[Oklab]
