package gear

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ssargent/gearsave/pkg/cursor"
)

func TestCoordinateData_EncodeDecode(t *testing.T) {
	testCases := []struct {
		name  string
		coord CoordinateData
	}{
		{name: "origin", coord: CoordinateData{}},
		{name: "mixed", coord: CoordinateData{X: 1.5, Y: -2.25, Z: 100}},
		{name: "extremes", coord: CoordinateData{X: math.MaxFloat32, Y: -math.MaxFloat32, Z: math.SmallestNonzeroFloat32}},
		{name: "negative zero", coord: CoordinateData{X: float32(math.Copysign(0, -1))}},
		{name: "infinities", coord: CoordinateData{X: float32(math.Inf(1)), Y: float32(math.Inf(-1))}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.coord.Encode()
			if len(b) != CoordinateSize {
				t.Fatalf("Encoded size: got %d, want %d", len(b), CoordinateSize)
			}

			got, err := DecodeCoordinateData(b)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !got.Equal(tc.coord) {
				t.Errorf("Round trip mismatch: got %+v, want %+v", got, tc.coord)
			}
			if !bytes.Equal(got.Encode(), b) {
				t.Error("Re-encoded bytes differ")
			}
		})
	}
}

func TestCoordinateData_Layout(t *testing.T) {
	b := CoordinateData{X: 1, Y: 2, Z: -1}.Encode()
	want := []byte{
		0x00, 0x00, 0x80, 0x3F,
		0x00, 0x00, 0x00, 0x40,
		0x00, 0x00, 0x80, 0xBF,
	}
	if !bytes.Equal(b, want) {
		t.Errorf("Encoded bytes: got %x, want %x", b, want)
	}
}

func TestCoordinateData_NaNPayload(t *testing.T) {
	nan := math.Float32frombits(0x7FC0BEEF)
	c := CoordinateData{X: nan, Y: 1, Z: 2}

	got, err := DecodeCoordinateData(c.Encode())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if math.Float32bits(got.X) != 0x7FC0BEEF {
		t.Errorf("NaN payload lost: got %#x", math.Float32bits(got.X))
	}
	if !got.Equal(c) {
		t.Error("A NaN should equal the same NaN bit pattern")
	}
}

func TestCoordinateData_Equal(t *testing.T) {
	a := CoordinateData{X: 10, Y: 20, Z: 30}

	if !a.Equal(CoordinateData{X: 10, Y: 20, Z: 30}) {
		t.Error("Identical coordinates should be equal")
	}

	// one ulp away on a single axis
	for i := 0; i < 3; i++ {
		b := a
		switch i {
		case 0:
			b.X = math.Float32frombits(math.Float32bits(b.X) ^ 1)
		case 1:
			b.Y = math.Float32frombits(math.Float32bits(b.Y) ^ 1)
		case 2:
			b.Z = math.Float32frombits(math.Float32bits(b.Z) ^ 1)
		}
		if a.Equal(b) || b.Equal(a) {
			t.Errorf("Axis %d: single-bit difference should not be equal", i)
		}
	}

	negZero := CoordinateData{X: float32(math.Copysign(0, -1))}
	if negZero.Equal(CoordinateData{}) {
		t.Error("-0 and +0 have different encodings and should not be equal")
	}
}

func TestCoordinateData_Copy(t *testing.T) {
	a := CoordinateData{X: 1, Y: 2, Z: 3}
	b := a.Copy()
	b.X = 99

	if a.X != 1 {
		t.Error("Modifying the copy changed the original")
	}
	if !a.Copy().Equal(a) {
		t.Error("Copy should equal the original")
	}
}

func TestCoordinateData_Truncated(t *testing.T) {
	r := cursor.NewReader(make([]byte, 8))

	got, err := ReadCoordinateData(r)
	if !errors.Is(err, cursor.ErrTruncated) {
		t.Fatalf("Expected truncation error, got %v", err)
	}
	if got != (CoordinateData{}) {
		t.Errorf("Expected zero value on failure, got %+v", got)
	}
	if r.Position() != 0 {
		t.Errorf("Reader advanced to %d on failure", r.Position())
	}

	var te *cursor.TruncatedInputError
	if errors.As(err, &te) && (te.Need != 12 || te.Have != 8) {
		t.Errorf("Unexpected error detail: %+v", te)
	}
}
