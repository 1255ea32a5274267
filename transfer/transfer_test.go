package transfer

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

var all_curves = []Function{SRGB, ProPhoto, AdobeRGB, IdentityCurve(0)}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, f := range all_curves {
		t.Run(f.String(), func(t *testing.T) {
			for i := -1000; i <= 2000; i++ {
				x := float64(i) / 1000
				assert.InDelta(t, x, f.Decode(f.Encode(x)), 1e-9, "x=%v", x)
				assert.InDelta(t, x, f.Encode(f.Decode(x)), 1e-9, "x=%v", x)
			}
		})
	}
}

func TestKnownValues(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 0.21404114048223244, SRGB.Decode(0.5), 1e-12)
	assert.InDelta(t, 187.51603067837462, SRGB.Encode(0.5)*255, 1e-9)
	assert.InDelta(t, 1.0, SRGB.Decode(1), 1e-12)
	assert.Equal(t, 0.0, SRGB.Decode(0))
	assert.InDelta(t, 0.04045/12.92, SRGB.Decode(0.04045), 1e-8)
	assert.InDelta(t, 0.7296583817678015, AdobeRGB.Encode(0.5), 1e-12)
	// linear toe of ProPhoto ends at 1/512
	assert.InDelta(t, 1.0/512, ProPhoto.Decode(1.0/32), 1e-12)
	assert.InDelta(t, 0.01/16, ProPhoto.Decode(0.01), 1e-15)
}

func TestTotality(t *testing.T) {
	t.Parallel()
	for _, f := range all_curves {
		for _, x := range []float64{-5, -1, -0.5, -1e-6, 0, 1e-6, 3, 1e6} {
			d, e := f.Decode(x), f.Encode(x)
			require.False(t, math.IsNaN(d) || math.IsInf(d, 0), "%s.Decode(%v) = %v", f, x, d)
			require.False(t, math.IsNaN(e) || math.IsInf(e, 0), "%s.Encode(%v) = %v", f, x, e)
			// odd extension
			assert.Equal(t, -d, f.Decode(-x))
			assert.Equal(t, -e, f.Encode(-x))
		}
		assert.True(t, math.IsNaN(f.Decode(math.NaN())))
		assert.True(t, math.IsInf(f.Encode(math.Inf(1)), 1))
	}
}

func TestQuantize(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		in       float64
		expected uint8
	}{
		{127.5, 128},
		{206.5, 207},
		{127.49, 127},
		{0.5, 1},
		{0.49, 0},
		{254.5, 255},
		{-3, 0},
		{-0.5, 0},
		{300, 255},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	} {
		t.Run(fmt.Sprintf("%v", tc.in), func(t *testing.T) {
			assert.Equal(t, tc.expected, Quantize(tc.in))
		})
	}
	assert.Equal(t, uint8(128), ToUint8(127.5/255))
	assert.Equal(t, uint8(188), EncodeUint8(SRGB, 0.5))
	for i := range 256 {
		assert.Equal(t, uint8(i), ToUint8(FromUint8(uint8(i))))
	}
}

func TestDecodeLUT(t *testing.T) {
	t.Parallel()
	for _, f := range all_curves {
		for i := range 256 {
			v := uint8(i)
			require.Equal(t, f.Decode(FromUint8(v)), DecodeUint8(f, v), "%s at %d", f, i)
			require.Equal(t, v, EncodeUint8(f, DecodeUint8(f, v)), "%s at %d", f, i)
		}
	}
}

func TestCurveConstruction(t *testing.T) {
	_, err := NewGammaCurve(0)
	require.Error(t, err)
	_, err = NewGammaCurve(math.NaN())
	require.Error(t, err)
	_, err = NewSplitCurve("bad", 2.4, 0, 0, 1, 0)
	require.Error(t, err)
	require.Panics(t, func() { MustGammaCurve(-1) })
	c, err := NewGammaCurve(2)
	require.NoError(t, err)
	assert.Equal(t, "GammaCurve{2}", c.String())
	assert.InDelta(t, 0.25, c.Decode(0.5), 1e-15)
}
