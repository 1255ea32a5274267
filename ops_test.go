package tint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func assert_linear_near(t *testing.T, r, g, b float32, c LinearSrgb) {
	t.Helper()
	assert.InDelta(t, r, c.R, 1e-6)
	assert.InDelta(t, g, c.G, 1e-6)
	assert.InDelta(t, b, c.B, 1e-6)
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	a, b := NewLinearSrgb(0.2, 0.3, 0.4), NewLinearSrgb(0.1, 0.2, 0.1)
	assert_linear_near(t, 0.3, 0.5, 0.5, Add(a, b))
	assert_linear_near(t, 0.1, 0.1, 0.3, Sub(a, b))
	assert_linear_near(t, 0.02, 0.06, 0.04, Mul(a, b))
	assert_linear_near(t, 0.1, 0.15, 0.2, Scale(a, 0.5))
	assert_linear_near(t, 0.1, 0.15, 0.2, Div(a, 2))
	assert_linear_near(t, 0.15, 0.25, 0.25, Lerp(a, b, 0.5))
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))

	// alpha takes part in arithmetic like any other channel
	x := Add(NewLinearSrgba(0.1, 0.1, 0.1, 0.5), NewLinearSrgba(0.1, 0.1, 0.1, 0.25))
	assert.InDelta(t, 0.75, x.A, 1e-7)
	y := Scale(NewOklab(0.5, 0.1, -0.1), 2)
	assert.InDelta(t, 1, y.L, 1e-7)
	assert.InDelta(t, -0.2, y.B, 1e-7)
	z := Div(NewAcesCg(1, 2, 3), 0)
	assert.Equal(t, "AcesCg(+Inf, +Inf, +Inf)", z.String())
}

func TestApproxEqual(t *testing.T) {
	a := NewLinearSrgb(0.2, 0.3, 0.4)
	assert.True(t, ApproxEqual(a, a, 0))
	assert.True(t, ApproxEqual(a, NewLinearSrgb(0.2001, 0.3, 0.4), 1e-3))
	assert.False(t, ApproxEqual(a, NewLinearSrgb(0.21, 0.3, 0.4), 1e-3))
	assert.True(t, ApproxEqual(NewSrgbU8(1, 2, 3), NewSrgbU8(2, 2, 3), 1))
	assert.False(t, ApproxEqual(NewSrgbaU8(1, 2, 3, 4), NewSrgbaU8(1, 2, 3, 6), 1))
}

func TestPerceptualBlend(t *testing.T) {
	t.Parallel()
	start := Convert[Oklab](NewSrgbU8(255, 0, 0))
	end := Convert[Oklab](NewSrgbU8(0, 0, 255))
	mid := PerceptualBlend(start, end, 0.5)
	assert.Equal(t, NewSrgbU8(140, 83, 162), Convert[SrgbU8](mid))

	c := Convert[Oklab](NewSrgbU8(128, 64, 192))
	assert.True(t, ApproxEqual(c, PerceptualBlend(c, c, 0), 1e-3))
	assert.True(t, ApproxEqual(c, PerceptualBlend(c, c, 1), 1e-3))

	black := Convert[Oklab](NewSrgbU8(0, 0, 0))
	white := Convert[Oklab](NewSrgbU8(255, 255, 255))
	prev := black.L
	for _, f := range []float64{0.25, 0.5, 0.75, 1} {
		l := PerceptualBlend(black, white, f).L
		require.GreaterOrEqual(t, l, prev)
		prev = l
	}
}

func TestAlphaOf(t *testing.T) {
	assert.InDelta(t, 0.8, AlphaOf(NewSrgbaU8(1, 2, 3, 204)), 1e-9)
	assert.InDelta(t, 0.25, AlphaOf(NewLinearSrgbaPremultiplied(0, 0, 0, 0.25)), 1e-9)
	assert.Equal(t, 1.0, AlphaOf(NewSrgbaF32(0, 0, 0, 1)))
}

func TestOver(t *testing.T) {
	t.Parallel()
	src := NewSrgbaU8(255, 0, 0, 128)
	dst := NewSrgbaU8(0, 0, 255, 255)
	assert.Equal(t, NewSrgbaU8(188, 0, 187, 255), Over(src, dst))
	// opaque source hides the destination
	assert.Equal(t, NewSrgbaU8(10, 20, 30, 255), Over(NewSrgbaU8(10, 20, 30, 255), dst))
	// transparent source leaves the destination
	assert.Equal(t, dst, Over(NewSrgbaU8(10, 20, 30, 0), dst))
	// premultiplied inputs are composited directly
	s := NewLinearSrgbaPremultiplied(0.25, 0, 0, 0.5)
	d := NewLinearSrgbaPremultiplied(0, 0, 0.5, 0.5)
	assert.Equal(t, NewLinearSrgbaPremultiplied(0.25, 0, 0.25, 0.75), Over(s, d))
}
