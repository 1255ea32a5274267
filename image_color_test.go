package tint

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestSharp(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected SrgbaU8
	}{
		{"#ff8000", NewSrgbaU8(255, 128, 0, 255)},
		{"FF800080", NewSrgbaU8(255, 128, 0, 128)},
		{"#f80", NewSrgbaU8(255, 136, 0, 255)},
		{"#f808", NewSrgbaU8(255, 136, 0, 136)},
	} {
		c, err := ParseSharp(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.expected, c, tc.in)
	}
	for _, bad := range []string{"", "#12345", "#gg0000", "#123456789"} {
		_, err := ParseSharp(bad)
		require.Error(t, err, bad)
	}
	assert.Equal(t, "#ff8000", NewSrgbU8(255, 128, 0).AsSharp())
	assert.Equal(t, "#ff800080", NewSrgbaU8(255, 128, 0, 128).AsSharp())
}

func TestImageColorInterop(t *testing.T) {
	r, g, b, a := NewSrgbU8(0x12, 0x34, 0x56).RGBA()
	assert.Equal(t, []uint32{0x1212, 0x3434, 0x5656, 0xffff}, []uint32{r, g, b, a})
	assert.Equal(t, NewSrgbU8(0x12, 0x34, 0x56), SrgbU8Model.Convert(color.RGBA{0x12, 0x34, 0x56, 0xff}))
	assert.Equal(t, SrgbU8{}, SrgbU8Model.Convert(color.Transparent))
	assert.Equal(t, NewSrgbU8(255, 0, 0), SrgbU8Model.Convert(color.RGBA{0x80, 0, 0, 0x80}))
	assert.Equal(t, NewSrgbaU8(255, 0, 0, 0x80), SrgbaU8Model.Convert(color.RGBA{0x80, 0, 0, 0x80}))
	assert.Equal(t, NewSrgbaU8(1, 2, 3, 4), SrgbaU8Model.Convert(NewSrgbaU8(1, 2, 3, 4)))

	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, NewSrgbaU8(10, 20, 30, 255))
	img.Set(1, 0, NewSrgbU8(40, 50, 60))
	assert.Equal(t, []uint8{10, 20, 30, 255, 40, 50, 60, 255}, img.Pix)
	colors, err := FromBytes[SrgbaU8](img.Pix)
	require.NoError(t, err)
	assert.Equal(t, NewSrgbaU8(40, 50, 60, 255), colors[1])
}
