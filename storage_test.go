package tint

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestJSON(t *testing.T) {
	b, err := json.Marshal(NewSrgbU8(102, 54, 220))
	require.NoError(t, err)
	assert.Equal(t, "[102,54,220]", string(b))
	b, err = json.Marshal(NewLinearSrgba(0.5, 0.25, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, "[0.5,0.25,1,0]", string(b))
	b, err = json.Marshal(NewOklab(0.5, -0.125, 0.0625))
	require.NoError(t, err)
	assert.Equal(t, "[0.5,-0.125,0.0625]", string(b))

	type palette struct {
		Background SrgbaU8 `json:"bg"`
		Accent     Oklab   `json:"accent"`
	}
	var p palette
	require.NoError(t, json.Unmarshal([]byte(`{"bg": [1, 2, 3, 4], "accent": [0.75, 0.5, -0.25]}`), &p))
	assert.Equal(t, NewSrgbaU8(1, 2, 3, 4), p.Background)
	assert.Equal(t, NewOklab(0.75, 0.5, -0.25), p.Accent)
	b, err = json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"bg":[1,2,3,4],"accent":[0.75,0.5,-0.25]}`, string(b))

	var c SrgbU8
	require.Error(t, json.Unmarshal([]byte(`[1, 2]`), &c))
	require.Error(t, json.Unmarshal([]byte(`[1, 2, 3, 4]`), &c))
	require.Error(t, json.Unmarshal([]byte(`[1, 2, 300]`), &c))
	require.Error(t, json.Unmarshal([]byte(`{"R": 1}`), &c))
}

func TestBinary(t *testing.T) {
	b, err := NewSrgbaU8(1, 2, 3, 4).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, b)

	b, err = NewLinearSrgb(1, 0, -2).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f, 0, 0, 0, 0, 0, 0, 0, 0xc0}, b)

	var c LinearSrgb
	require.NoError(t, c.UnmarshalBinary(b))
	assert.Equal(t, NewLinearSrgb(1, 0, -2), c)
	require.Error(t, c.UnmarshalBinary(b[:8]))

	var o Oklab
	require.NoError(t, o.UnmarshalBinary([]byte{0, 0, 0x80, 0x7f, 0, 0, 0, 0, 0, 0, 0, 0}))
	assert.True(t, math.IsInf(float64(o.L), 1))
}

func TestStorageVec(t *testing.T) {
	v := NewLinearSrgba(0.5, 0.25, 1, 0).Vec()
	assert.Equal(t, float32(0.25), v[1])
	assert.Equal(t, float32(220), NewSrgbU8(102, 54, 220).Vec()[2])
	assert.Equal(t, float32(-0.5), NewOklab(1, -0.5, 0).Vec()[1])
}
