package tint

import (
	"fmt"
	"testing"
)

var _ = fmt.Print

func BenchmarkSrgbU8ToLinear(b *testing.B) {
	c := NewSrgbU8(102, 54, 220)
	for b.Loop() {
		_ = Convert[LinearSrgb](c)
	}
}

func BenchmarkLinearToSrgbU8(b *testing.B) {
	c := NewLinearSrgb(0.3, 0.6, 0.1)
	for b.Loop() {
		_ = Convert[SrgbU8](c)
	}
}

func BenchmarkSrgbU8ToOklab(b *testing.B) {
	c := NewSrgbU8(102, 54, 220)
	for b.Loop() {
		_ = Convert[Oklab](c)
	}
}

func BenchmarkPerceptualBlend(b *testing.B) {
	x := Convert[Oklab](NewSrgbU8(255, 0, 0))
	y := Convert[Oklab](NewSrgbU8(0, 0, 255))
	for b.Loop() {
		_ = PerceptualBlend(x, y, 0.5)
	}
}

func BenchmarkBulk(b *testing.B) {
	src := gradient(1 << 16)
	dst := make([]LinearSrgbaPremultiplied, len(src))
	for _, workers := range []int{1, 0} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for b.Loop() {
				if err := ConvertSlice(dst, src, Workers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
