// Package cursor provides sequential little-endian reads and writes over
// in-memory buffers.
package cursor

import (
	"encoding/binary"
	"math"
)

// Reader reads little-endian values sequentially from a byte slice.
// Every read is bounds-checked and fails with *TruncatedInputError
// without advancing the position.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current read offset.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) claim(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, &TruncatedInputError{Offset: r.pos, Need: n, Have: r.Remaining()}
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.claim(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.claim(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadFloat32 reads an IEEE-754 single. The bit pattern is kept as is,
// NaN payloads included.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadBytes reads n bytes into a new slice that does not alias the source.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.claim(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadRest reads every remaining byte. It never fails; an exhausted
// reader yields an empty, non-nil slice.
func (r *Reader) ReadRest() []byte {
	out := make([]byte, r.Remaining())
	copy(out, r.data[r.pos:])
	r.pos = len(r.data)
	return out
}
