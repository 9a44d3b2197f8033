package gear

import (
	"math"

	"github.com/ssargent/gearsave/pkg/cursor"
)

// CoordinateSize is the encoded size of a CoordinateData.
const CoordinateSize = 12

// CoordinateData is a world position. The zero value is the origin.
type CoordinateData struct {
	X float32 `json:"x" yaml:"x"` // east/west
	Y float32 `json:"y" yaml:"y"` // north/south
	Z float32 `json:"z" yaml:"z"` // up/down
}

// DecodeCoordinateData decodes the first 12 bytes of b.
func DecodeCoordinateData(b []byte) (CoordinateData, error) {
	return ReadCoordinateData(cursor.NewReader(b))
}

// ReadCoordinateData reads X, Y and Z. All 12 bytes are claimed before any
// component is set, so a short buffer never produces a partial value.
func ReadCoordinateData(r *cursor.Reader) (CoordinateData, error) {
	b, err := r.ReadBytes(CoordinateSize)
	if err != nil {
		return CoordinateData{}, err
	}
	sub := cursor.NewReader(b)
	x, _ := sub.ReadFloat32()
	y, _ := sub.ReadFloat32()
	z, _ := sub.ReadFloat32()
	return CoordinateData{X: x, Y: y, Z: z}, nil
}

// Encode returns the 12-byte form.
func (c CoordinateData) Encode() []byte {
	w := cursor.NewWriter(CoordinateSize)
	c.AppendTo(w)
	return w.Bytes()
}

func (c CoordinateData) AppendTo(w *cursor.Writer) {
	w.WriteFloat32(c.X)
	w.WriteFloat32(c.Y)
	w.WriteFloat32(c.Z)
}

// Equal compares the bit patterns of all three components. There is no
// tolerance: -0 differs from +0 and a NaN equals only the same NaN.
func (c CoordinateData) Equal(other CoordinateData) bool {
	return math.Float32bits(c.X) == math.Float32bits(other.X) &&
		math.Float32bits(c.Y) == math.Float32bits(other.Y) &&
		math.Float32bits(c.Z) == math.Float32bits(other.Z)
}

// Copy returns an independent value with the same components.
func (c CoordinateData) Copy() CoordinateData {
	return CoordinateData{X: c.X, Y: c.Y, Z: c.Z}
}

// canonicalNaN is the float32 NaN that JSON and YAML decoders produce.
const canonicalNaN = 0x7FC00000

// textLossless reports whether v survives a YAML round trip bit for bit.
// Infinities do; a NaN does only when it is the canonical one.
func textLossless(v float32) bool {
	return !math.IsNaN(float64(v)) || math.Float32bits(v) == canonicalNaN
}
