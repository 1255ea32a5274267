package tint

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrLayout is wrapped by the errors returned when a raw buffer does not
// match the binary layout of an encoding
var ErrLayout = errors.New("buffer does not match the color layout")

func check_layout[E Encoding[E]](want ElementType, n int) (d *Descriptor, err error) {
	var e E
	d = e.descriptor()
	if d.Element != want {
		return d, fmt.Errorf("%w: %s stores %s channels not %s", ErrLayout, d.Name, d.Element, want)
	}
	if n%d.Channels != 0 {
		return d, fmt.Errorf("%w: %d values is not a multiple of the %d channels of %s", ErrLayout, n, d.Channels, d.Name)
	}
	return
}

// FromBytes reinterprets buf, which must hold tightly packed 8-bit
// channels in the layout of E, as a slice of colors. No data is copied.
func FromBytes[E Encoding[E]](buf []byte) ([]E, error) {
	d, err := check_layout[E](Uint8, len(buf))
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return []E{}, nil
	}
	return unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(buf))), len(buf)/d.Channels), nil
}

// FromFloats reinterprets buf, which must hold tightly packed float32
// channels in the layout of E, as a slice of colors. No data is copied.
func FromFloats[E Encoding[E]](buf []float32) ([]E, error) {
	d, err := check_layout[E](Float32, len(buf))
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return []E{}, nil
	}
	return unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(buf))), len(buf)/d.Channels), nil
}

// AsBytes returns the storage of colors as raw bytes without copying. For
// float encodings the bytes are in native byte order.
func AsBytes[E Encoding[E]](colors []E) []byte {
	if len(colors) == 0 {
		return []byte{}
	}
	var e E
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(colors))), len(colors)*int(unsafe.Sizeof(e)))
}

// AsFloats returns the channels of colors of a float encoding without
// copying. It panics for 8-bit encodings.
func AsFloats[E Encoding[E]](colors []E) []float32 {
	var e E
	d := e.descriptor()
	if d.Element != Float32 {
		panic(fmt.Sprintf("%s does not store float32 channels", d.Name))
	}
	if len(colors) == 0 {
		return []float32{}
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(colors))), len(colors)*d.Channels)
}
