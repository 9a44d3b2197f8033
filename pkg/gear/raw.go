package gear

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ssargent/gearsave/pkg/cursor"
)

// Raw is a byte range whose meaning is unknown. It is captured verbatim on
// decode and written back verbatim on encode. Its text form is hex.
type Raw []byte

func (r Raw) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(r)))
	hex.Encode(out, r)
	return out, nil
}

func (r *Raw) UnmarshalText(text []byte) error {
	b := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(b, text); err != nil {
		return fmt.Errorf("invalid raw block: %w", err)
	}
	*r = b
	return nil
}

// Equal reports whether both ranges hold the same bytes.
func (r Raw) Equal(other Raw) bool {
	return bytes.Equal(r, other)
}

func readRaw(r *cursor.Reader, field string, n int) (Raw, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, cursor.WithField(field, err)
	}
	return b, nil
}

func checkRaw(field string, b Raw, n int) error {
	if len(b) != n {
		return fmt.Errorf("%w: %s is %d bytes, layout requires %d", ErrInvalidRecord, field, len(b), n)
	}
	return nil
}
