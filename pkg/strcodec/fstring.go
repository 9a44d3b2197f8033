package strcodec

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/ssargent/gearsave/pkg/cursor"
)

// FString is the Unreal Engine serialized string.
//
//	len == 0: empty string, no payload
//	len > 0:  len Latin-1 bytes, the last one NUL
//	len < 0:  -len UTF-16LE code units, the last one NUL
//
// Writing picks Latin-1 when every rune is at most U+00FF.
type FString struct{}

func (FString) Name() string { return NameFString }

func (FString) Read(r *cursor.Reader) (string, error) {
	start := r.Position()
	n, err := r.ReadInt32()
	if err != nil {
		return "", cursor.WithField("length", err)
	}
	switch {
	case n == 0:
		return "", nil
	case n > 0:
		b, err := r.ReadBytes(int(n))
		if err != nil {
			return "", err
		}
		if b[len(b)-1] != 0 {
			return "", fmt.Errorf("%w: missing terminator at offset %d", ErrMalformedString, start)
		}
		s, err := charmap.ISO8859_1.NewDecoder().Bytes(b[:len(b)-1])
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedString, err)
		}
		return string(s), nil
	default:
		units := -int64(n)
		if units*2 > int64(r.Remaining()) {
			return "", &cursor.TruncatedInputError{Offset: r.Position(), Need: int(units * 2), Have: r.Remaining()}
		}
		b, err := r.ReadBytes(int(units * 2))
		if err != nil {
			return "", err
		}
		if b[len(b)-1] != 0 || b[len(b)-2] != 0 {
			return "", fmt.Errorf("%w: missing terminator at offset %d", ErrMalformedString, start)
		}
		payload := b[:len(b)-2]
		s, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(payload)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedString, err)
		}
		// The decoder substitutes U+FFFD for unpaired surrogates; refuse
		// anything that would not write back identically.
		if string(encodeUTF16(string(s))) != string(payload) {
			return "", fmt.Errorf("%w: invalid UTF-16 at offset %d", ErrMalformedString, start)
		}
		return string(s), nil
	}
}

func (FString) Write(w *cursor.Writer, s string) {
	if s == "" {
		w.WriteInt32(0)
		return
	}
	if latin1, ok := encodeLatin1(s); ok {
		w.WriteInt32(int32(len(latin1) + 1))
		w.WriteBytes(latin1)
		w.WriteBytes([]byte{0})
		return
	}
	wide := encodeUTF16(s)
	w.WriteInt32(-int32(len(wide)/2 + 1))
	w.WriteBytes(wide)
	w.WriteBytes([]byte{0, 0})
}

func encodeLatin1(s string) ([]byte, bool) {
	if !utf8.ValidString(s) {
		return nil, false
	}
	for _, c := range s {
		if c > 0xFF {
			return nil, false
		}
	}
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, false
	}
	return b, true
}

func encodeUTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return out
}
