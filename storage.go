package tint

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/kovidgoyal/tint/transfer"
	"golang.org/x/image/math/f32"
)

var _ = fmt.Print

// Element is the numeric type of a single stored channel
type Element interface {
	uint8 | float32
}

// Rgb holds three channels in R, G, B order with no padding
type Rgb[T Element] struct {
	R, G, B T
}

// Rgba holds four channels in R, G, B, A order with no padding
type Rgba[T Element] struct {
	R, G, B, A T
}

// Lab holds a lightness and two opponent channels
type Lab[T Element] struct {
	L, A, B T
}

func (c Rgb[T]) String() string  { return fmt.Sprintf("Rgb{%v %v %v}", c.R, c.G, c.B) }
func (c Rgba[T]) String() string { return fmt.Sprintf("Rgba{%v %v %v %v}", c.R, c.G, c.B, c.A) }
func (c Lab[T]) String() string  { return fmt.Sprintf("Lab{%v %v %v}", c.L, c.A, c.B) }

func (c Rgb[T]) Vec() f32.Vec3 { return f32.Vec3{float32(c.R), float32(c.G), float32(c.B)} }
func (c Rgba[T]) Vec() f32.Vec4 {
	return f32.Vec4{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}
func (c Lab[T]) Vec() f32.Vec3 { return f32.Vec3{float32(c.L), float32(c.A), float32(c.B)} }

func (c Rgb[T]) components() [4]float64 { return [4]float64{float64(c.R), float64(c.G), float64(c.B)} }
func (c Rgba[T]) components() [4]float64 {
	return [4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
}
func (c Lab[T]) components() [4]float64 { return [4]float64{float64(c.L), float64(c.A), float64(c.B)} }

// store converts a raw channel value to T, rounding and clamping for uint8
func store[T Element](v float64) T {
	var z T
	if _, is_byte := any(z).(uint8); is_byte {
		return T(transfer.Quantize(v))
	}
	return T(v)
}

func rgbFrom[T Element](v [4]float64) Rgb[T] {
	return Rgb[T]{store[T](v[0]), store[T](v[1]), store[T](v[2])}
}

func rgbaFrom[T Element](v [4]float64) Rgba[T] {
	return Rgba[T]{store[T](v[0]), store[T](v[1]), store[T](v[2]), store[T](v[3])}
}

func labFrom[T Element](v [4]float64) Lab[T] {
	return Lab[T]{store[T](v[0]), store[T](v[1]), store[T](v[2])}
}

func unmarshal_channels[T Element](data []byte, dest ...*T) error {
	var vals []T
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	if len(vals) != len(dest) {
		return fmt.Errorf("expected %d channels, got %d", len(dest), len(vals))
	}
	for i, d := range dest {
		*d = vals[i]
	}
	return nil
}

func (c Rgb[T]) MarshalJSON() ([]byte, error) { return json.Marshal([3]T{c.R, c.G, c.B}) }
func (c *Rgb[T]) UnmarshalJSON(data []byte) error {
	return unmarshal_channels(data, &c.R, &c.G, &c.B)
}

func (c Rgba[T]) MarshalJSON() ([]byte, error) { return json.Marshal([4]T{c.R, c.G, c.B, c.A}) }
func (c *Rgba[T]) UnmarshalJSON(data []byte) error {
	return unmarshal_channels(data, &c.R, &c.G, &c.B, &c.A)
}

func (c Lab[T]) MarshalJSON() ([]byte, error) { return json.Marshal([3]T{c.L, c.A, c.B}) }
func (c *Lab[T]) UnmarshalJSON(data []byte) error {
	return unmarshal_channels(data, &c.L, &c.A, &c.B)
}

func marshal_binary(c any) ([]byte, error) {
	return binary.Append(nil, binary.LittleEndian, c)
}

func unmarshal_binary(data []byte, c any) error {
	if sz := binary.Size(c); sz != len(data) {
		return fmt.Errorf("binary color data must be %d bytes long, not %d", sz, len(data))
	}
	_, err := binary.Decode(data, binary.LittleEndian, c)
	return err
}

// MarshalBinary emits the channels in declared order, float32 channels as
// little endian IEEE 754.
func (c Rgb[T]) MarshalBinary() ([]byte, error)      { return marshal_binary(&c) }
func (c *Rgb[T]) UnmarshalBinary(data []byte) error  { return unmarshal_binary(data, c) }
func (c Rgba[T]) MarshalBinary() ([]byte, error)     { return marshal_binary(&c) }
func (c *Rgba[T]) UnmarshalBinary(data []byte) error { return unmarshal_binary(data, c) }
func (c Lab[T]) MarshalBinary() ([]byte, error)      { return marshal_binary(&c) }
func (c *Lab[T]) UnmarshalBinary(data []byte) error  { return unmarshal_binary(data, c) }
