package quickmath

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"vector2d.theprimeagen.com/pkg/utils"
)

// VEC2_BINARY_SIZE is x then y, both big endian float64.
const VEC2_BINARY_SIZE = 16

var ErrVec2Size = fmt.Errorf("Vec2 binary form must be exactly %d bytes", VEC2_BINARY_SIZE)
var ErrVec2JSON = errors.New("Vec2 json must be an object {\"x\", \"y\"} or a pair [x, y]")

// vec2Fields has the same layout as Vec2 without its methods, so decoding
// into it does not recurse into UnmarshalJSON.
type vec2Fields Vec2

// UnmarshalJSON accepts the object form {"x": 1, "y": 2} that Marshal
// produces and the positional pair [1, 2].
func (v *Vec2) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrVec2JSON
	}

	switch trimmed[0] {
	case '{':
		// seeded with v so a missing axis keeps its value, like encoding/json
		fields := vec2Fields(*v)
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return fmt.Errorf("decoding Vec2 object: %w", err)
		}
		*v = Vec2(fields)
		return nil

	case '[':
		var pair []float64
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return fmt.Errorf("decoding Vec2 pair: %w", err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("%w: got %d elements", ErrVec2JSON, len(pair))
		}
		v.X, v.Y = pair[0], pair[1]
		return nil

	case 'n':
		// null leaves v untouched, same as encoding/json does for structs
		return nil
	}

	return ErrVec2JSON
}

// Pair is the positional encoding, x first.
func (v Vec2) Pair() [2]float64 {
	return [2]float64{v.X, v.Y}
}

func (v Vec2) MarshalBinary() ([]byte, error) {
	buf := make([]byte, VEC2_BINARY_SIZE)
	binary.BigEndian.PutUint64(buf[0:], math.Float64bits(v.X))
	binary.BigEndian.PutUint64(buf[8:], math.Float64bits(v.Y))
	return buf, nil
}

func (v *Vec2) UnmarshalBinary(data []byte) error {
	if len(data) != VEC2_BINARY_SIZE {
		return ErrVec2Size
	}

	v.X = math.Float64frombits(binary.BigEndian.Uint64(data[0:]))
	v.Y = math.Float64frombits(binary.BigEndian.Uint64(data[8:]))
	return nil
}

func (v Vec2) WriteTo(w io.Writer) (int64, error) {
	data, _ := v.MarshalBinary()
	if err := utils.WriteAll(data, w); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// ReadVec2 reads one binary encoded Vec2 from r.
func ReadVec2(r io.Reader) (Vec2, error) {
	var buf [VEC2_BINARY_SIZE]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Vec2{}, err
	}

	var v Vec2
	err := v.UnmarshalBinary(buf[:])
	return v, err
}
