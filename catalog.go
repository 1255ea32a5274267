package tint

import (
	"fmt"
	"strings"

	"github.com/kovidgoyal/tint/linear"
	"github.com/kovidgoyal/tint/transfer"
)

var _ = fmt.Print

// ID identifies a color encoding.
type ID int

// Color encodings.
const (
	UNKNOWN ID = iota
	SRGB_U8
	SRGB_F32
	SRGBA_U8
	SRGBA_F32
	SRGBA_PREMULTIPLIED_U8
	LINEAR_SRGB
	LINEAR_SRGBA
	LINEAR_SRGBA_PREMULTIPLIED
	OKLAB
	LINEAR_ADOBE_RGB
	ADOBE_RGB_U8
	LINEAR_PROPHOTO_RGB
	PROPHOTO_RGB_U8
	LINEAR_DISPLAY_P3
	DISPLAY_P3_U8
	LINEAR_BT2020
	ACES_CG
	ACES_2065

	num_of_ids
)

var idNames = map[ID]string{
	SRGB_U8:                    "SrgbU8",
	SRGB_F32:                   "SrgbF32",
	SRGBA_U8:                   "SrgbaU8",
	SRGBA_F32:                  "SrgbaF32",
	SRGBA_PREMULTIPLIED_U8:     "SrgbaPremultipliedU8",
	LINEAR_SRGB:                "LinearSrgb",
	LINEAR_SRGBA:               "LinearSrgba",
	LINEAR_SRGBA_PREMULTIPLIED: "LinearSrgbaPremultiplied",
	OKLAB:                      "Oklab",
	LINEAR_ADOBE_RGB:           "LinearAdobeRgb",
	ADOBE_RGB_U8:               "AdobeRgbU8",
	LINEAR_PROPHOTO_RGB:        "LinearProPhotoRgb",
	PROPHOTO_RGB_U8:            "ProPhotoRgbU8",
	LINEAR_DISPLAY_P3:          "LinearDisplayP3",
	DISPLAY_P3_U8:              "DisplayP3U8",
	LINEAR_BT2020:              "LinearBt2020",
	ACES_CG:                    "AcesCg",
	ACES_2065:                  "Aces2065",
}

var idsByName = func() map[string]ID {
	ans := make(map[string]ID, len(idNames))
	for id, name := range idNames {
		ans[strings.ToLower(name)] = id
	}
	return ans
}()

func (id ID) String() string {
	if ans, ok := idNames[id]; ok {
		return ans
	}
	return "UNKNOWN"
}

// IDByName looks up an encoding by its type name, case insensitively
func IDByName(name string) (ID, bool) {
	ans, ok := idsByName[strings.ToLower(name)]
	return ans, ok
}

type AlphaState int

const (
	NoAlpha AlphaState = iota
	SeparateAlpha
	// Premultiplied color channels are multiplied by alpha in linear light,
	// before any transfer function is applied.
	Premultiplied
)

func (a AlphaState) String() string {
	switch a {
	case SeparateAlpha:
		return "separate"
	case Premultiplied:
		return "premultiplied"
	}
	return "none"
}

type ElementType int

const (
	Uint8 ElementType = iota
	Float32
)

func (e ElementType) String() string {
	if e == Uint8 {
		return "uint8"
	}
	return "float32"
}

// Descriptor describes one color encoding. Catalog, DescriptorOf and the
// Descriptor methods of the encodings all return copies.
type Descriptor struct {
	ID       ID
	Name     string
	Channels int
	Element  ElementType
	// Transfer is nil for encodings that store linear values
	Transfer transfer.Function
	// Space is the linear space the decoded values are in. For Oklab it is
	// the XYZ reference space, reached through the Oklab pair.
	Space      *linear.Space
	Alpha      AlphaState
	Working    bool
	Perceptual bool
}

func (d Descriptor) String() string {
	t := "linear"
	if d.Transfer != nil {
		t = d.Transfer.String()
	}
	return fmt.Sprintf("%s{%d x %s, transfer: %s, space: %s, alpha: %s, working: %v}", d.Name, d.Channels, d.Element, t, d.Space, d.Alpha, d.Working)
}

func (d Descriptor) HasAlpha() bool { return d.Alpha != NoAlpha }

// Validate checks the structural invariants of a descriptor
func (d Descriptor) Validate() error {
	if d.Working && d.Space == nil {
		return fmt.Errorf("the working encoding %s has no linear space", d.Name)
	}
	if d.Perceptual && !d.Working {
		return fmt.Errorf("the perceptual encoding %s is not a working encoding", d.Name)
	}
	expected := 3
	if d.HasAlpha() {
		expected = 4
	}
	if d.Channels != expected {
		return fmt.Errorf("the encoding %s has alpha: %s and so must have %d channels not %d", d.Name, d.Alpha, expected, d.Channels)
	}
	if d.Element == Uint8 && d.Working {
		return fmt.Errorf("the working encoding %s cannot use 8-bit storage", d.Name)
	}
	return nil
}

func desc(id ID, channels int, elem ElementType, tf transfer.Function, space *linear.Space, alpha AlphaState) Descriptor {
	return Descriptor{ID: id, Name: id.String(), Channels: channels, Element: elem, Transfer: tf, Space: space, Alpha: alpha, Working: tf == nil}
}

var descriptors = func() (ans [num_of_ids]Descriptor) {
	s := transfer.SRGB
	for _, d := range []Descriptor{
		desc(SRGB_U8, 3, Uint8, s, linear.Srgb, NoAlpha),
		desc(SRGB_F32, 3, Float32, s, linear.Srgb, NoAlpha),
		desc(SRGBA_U8, 4, Uint8, s, linear.Srgb, SeparateAlpha),
		desc(SRGBA_F32, 4, Float32, s, linear.Srgb, SeparateAlpha),
		desc(SRGBA_PREMULTIPLIED_U8, 4, Uint8, s, linear.Srgb, Premultiplied),
		desc(LINEAR_SRGB, 3, Float32, nil, linear.Srgb, NoAlpha),
		desc(LINEAR_SRGBA, 4, Float32, nil, linear.Srgb, SeparateAlpha),
		desc(LINEAR_SRGBA_PREMULTIPLIED, 4, Float32, nil, linear.Srgb, Premultiplied),
		desc(OKLAB, 3, Float32, nil, linear.CieXyz, NoAlpha),
		desc(LINEAR_ADOBE_RGB, 3, Float32, nil, linear.AdobeRgb, NoAlpha),
		desc(ADOBE_RGB_U8, 3, Uint8, transfer.AdobeRGB, linear.AdobeRgb, NoAlpha),
		desc(LINEAR_PROPHOTO_RGB, 3, Float32, nil, linear.ProPhotoRgb, NoAlpha),
		desc(PROPHOTO_RGB_U8, 3, Uint8, transfer.ProPhoto, linear.ProPhotoRgb, NoAlpha),
		desc(LINEAR_DISPLAY_P3, 3, Float32, nil, linear.DisplayP3, NoAlpha),
		desc(DISPLAY_P3_U8, 3, Uint8, s, linear.DisplayP3, NoAlpha),
		desc(LINEAR_BT2020, 3, Float32, nil, linear.Bt2020, NoAlpha),
		desc(ACES_CG, 3, Float32, nil, linear.AcesCg, NoAlpha),
		desc(ACES_2065, 3, Float32, nil, linear.Aces2065, NoAlpha),
	} {
		ans[d.ID] = d
	}
	ans[OKLAB].Perceptual = true
	return
}()

func init() {
	for i := UNKNOWN + 1; i < num_of_ids; i++ {
		d := &descriptors[i]
		if d.ID != i {
			panic(fmt.Sprintf("no descriptor for the encoding: %s", i))
		}
		if err := d.Validate(); err != nil {
			panic(err)
		}
	}
}

// Catalog returns copies of the descriptors of all encodings in ID order
func Catalog() []Descriptor {
	return append([]Descriptor(nil), descriptors[UNKNOWN+1:]...)
}

// DescriptorOf returns a copy of the descriptor for id. The descriptor of
// an encoding type E is E{}.Descriptor().
func DescriptorOf(id ID) (Descriptor, bool) {
	if id <= UNKNOWN || id >= num_of_ids {
		return Descriptor{}, false
	}
	return descriptors[id], true
}
