package tint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestFromBytes(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6}
	c, err := FromBytes[SrgbU8](buf)
	require.NoError(t, err)
	assert.Equal(t, []SrgbU8{NewSrgbU8(1, 2, 3), NewSrgbU8(4, 5, 6)}, c)
	// no copy is made
	c[1].G = 99
	assert.Equal(t, byte(99), buf[4])
	assert.Equal(t, buf, AsBytes(c))

	rgba, err := FromBytes[SrgbaPremultipliedU8](buf[:4])
	require.NoError(t, err)
	assert.Equal(t, NewSrgbaPremultipliedU8(1, 2, 3, 4), rgba[0])

	_, err = FromBytes[SrgbaU8](buf)
	require.True(t, errors.Is(err, ErrLayout), "%v", err)
	_, err = FromBytes[LinearSrgb](buf)
	require.True(t, errors.Is(err, ErrLayout), "%v", err)
	empty, err := FromBytes[SrgbU8](nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFromFloats(t *testing.T) {
	buf := []float32{0.1, 0.2, 0.3, 1, 0.4, 0.5, 0.6, 0.5}
	c, err := FromFloats[LinearSrgba](buf)
	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.Equal(t, NewLinearSrgba(0.4, 0.5, 0.6, 0.5), c[1])
	assert.Equal(t, buf, AsFloats(c))
	assert.Len(t, AsBytes(c), 32)

	lab, err := FromFloats[Oklab](buf[:6])
	require.NoError(t, err)
	assert.Equal(t, NewOklab(1, 0.4, 0.5), lab[1])

	_, err = FromFloats[LinearSrgb](buf[:7])
	require.True(t, errors.Is(err, ErrLayout), "%v", err)
	_, err = FromFloats[SrgbU8](buf[:6])
	require.True(t, errors.Is(err, ErrLayout), "%v", err)
	require.Panics(t, func() { AsFloats([]SrgbU8{{}}) })
	assert.Empty(t, AsFloats([]AcesCg{}))
}

func TestBulkOverBuffer(t *testing.T) {
	pixels := []byte{255, 0, 0, 255, 0, 255, 0, 128}
	colors, err := FromBytes[SrgbaU8](pixels)
	require.NoError(t, err)
	lin, err := ConvertAll[LinearSrgbaPremultiplied](colors)
	require.NoError(t, err)
	f := AsFloats(lin)
	require.Len(t, f, 8)
	assert.Equal(t, float32(1), f[0])
	assert.InDelta(t, 128.0/255, f[5], 1e-6)
	assert.InDelta(t, 128.0/255, f[7], 1e-6)
}
