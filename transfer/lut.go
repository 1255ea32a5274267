package transfer

import (
	"sync"
)

type lut8 = [256]float64

var decode8 sync.Map // Function -> func() *lut8

func build8BitToLinear(f Function) *lut8 {
	var ans lut8
	for i := range ans {
		ans[i] = f.Decode(FromUint8(uint8(i)))
	}
	return &ans
}

var srgbDecode8LUT = sync.OnceValue(func() *lut8 { return build8BitToLinear(SRGB) })

func tableFor(f Function) *lut8 {
	if f == Function(SRGB) {
		return srgbDecode8LUT()
	}
	if v, ok := decode8.Load(f); ok {
		return v.(func() *lut8)()
	}
	v, _ := decode8.LoadOrStore(f, sync.OnceValue(func() *lut8 { return build8BitToLinear(f) }))
	return v.(func() *lut8)()
}

// DecodeUint8 converts an 8-bit encoded value to a linear value using f.
//
// This implementation uses a look-up table built on first use and is
// bit-identical to f.Decode(FromUint8(v)).
func DecodeUint8(f Function, v uint8) float64 {
	return tableFor(f)[v]
}

// EncodeUint8 converts a linear value to an 8-bit encoded value using f and
// the rounding policy of Quantize.
func EncodeUint8(f Function, v float64) uint8 {
	return ToUint8(f.Encode(v))
}
