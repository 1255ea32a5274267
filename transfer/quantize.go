package transfer

import (
	"math"
)

// Quantize rounds an already scaled value half away from zero and clamps
// it to [0, 255]. NaN maps to 0.
func Quantize(v float64) uint8 {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}

// ToUint8 converts a normalised value in [0, 1] to its 8-bit representation
func ToUint8(x float64) uint8 { return Quantize(x * 255) }

// FromUint8 converts an 8-bit value to a normalised value in [0, 1]
func FromUint8(v uint8) float64 { return float64(v) / 255 }
