package linear

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

// Identity is the 3x3 identity matrix
var Identity = f64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

func at(m *f64.Mat3, r, c int) float64 { return m[r*3+c] }

// Mul returns a*b, so that Apply(Mul(a, b), v) == Apply(a, Apply(b, v))
func Mul(a, b *f64.Mat3) (out f64.Mat3) {
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += at(a, i, k) * at(b, k, j)
			}
			out[i*3+j] = sum
		}
	}
	return
}

// Apply returns m*v
func Apply(m *f64.Mat3, v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Invert returns the inverse of m computed from its adjugate
func Invert(m *f64.Mat3) (ans f64.Mat3, err error) {
	det := m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
	if det == 0 {
		return ans, fmt.Errorf("matrix is singular and cannot be inverted")
	}
	inv_det := 1 / det
	adj := f64.Mat3{
		m[4]*m[8] - m[5]*m[7],
		m[2]*m[7] - m[1]*m[8],
		m[1]*m[5] - m[2]*m[4],

		m[5]*m[6] - m[3]*m[8],
		m[0]*m[8] - m[2]*m[6],
		m[2]*m[3] - m[0]*m[5],

		m[3]*m[7] - m[4]*m[6],
		m[1]*m[6] - m[0]*m[7],
		m[0]*m[4] - m[1]*m[3],
	}
	for i := range adj {
		ans[i] = inv_det * adj[i]
	}
	return
}

func diag(v f64.Vec3) f64.Mat3 {
	return f64.Mat3{v[0], 0, 0, 0, v[1], 0, 0, 0, v[2]}
}

// is_identity is true when m is the identity to within the rounding error
// of composing a matrix with its inverse
func is_identity(m *f64.Mat3) bool {
	for i, x := range m {
		if math.Abs(x-Identity[i]) > 1e-12 {
			return false
		}
	}
	return true
}
