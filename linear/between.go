package linear

import (
	"golang.org/x/image/math/f64"
)

type pair struct{ src, dst *Space }

// composed matrices for every ordered pair of distinct builtin spaces,
// written once in init and only read afterwards
var pair_table map[pair]*f64.Mat3

func compose(src, dst *Space) *f64.Mat3 {
	m := Mul(&dst.from_xyz, &src.to_xyz)
	return &m
}

func init() {
	b := Builtin()
	pair_table = make(map[pair]*f64.Mat3, len(b)*len(b))
	for _, src := range b {
		for _, dst := range b {
			if src != dst {
				pair_table[pair{src, dst}] = compose(src, dst)
			}
		}
	}
}

// Between returns the matrix converting linear RGB in src to linear RGB in
// dst. It returns nil when no transform is needed: src and dst are the same
// space, or they are different spaces with the same primaries and white
// point. The returned matrix must not be modified.
func Between(src, dst *Space) *f64.Mat3 {
	if src == dst {
		return nil
	}
	if m := pair_table[pair{src, dst}]; m != nil {
		return m
	}
	if m := compose(src, dst); !is_identity(m) {
		return m
	}
	return nil
}

// Convert transforms v from src to dst
func Convert(src, dst *Space, v f64.Vec3) f64.Vec3 {
	if m := Between(src, dst); m != nil {
		return Apply(m, v)
	}
	return v
}
