// Package strcodec reads and writes length-prefixed text fields.
//
// Two encodings are provided. Prefixed32 is a u32 little-endian byte count
// followed by the bytes verbatim. FString is the Unreal Engine form: a
// signed 32-bit character count that includes a trailing NUL, positive for
// Latin-1 text and negative for UTF-16LE text.
package strcodec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ssargent/gearsave/pkg/cursor"
)

// ErrMalformedString is returned for a string whose length fits the buffer
// but whose content breaks the encoding rules.
var ErrMalformedString = errors.New("malformed string")

// Codec reads and writes one text field.
type Codec interface {
	Name() string
	Read(r *cursor.Reader) (string, error)
	Write(w *cursor.Writer, s string)
}

const (
	NamePrefixed32 = "prefixed32"
	NameFString    = "fstring"
)

// ByName resolves an encoding name. An empty name selects Prefixed32.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NamePrefixed32:
		return Prefixed32{}, nil
	case NameFString:
		return FString{}, nil
	default:
		return nil, fmt.Errorf("unknown string encoding %q", name)
	}
}

// Prefixed32 is a u32 byte length followed by the raw bytes. Any byte
// sequence survives a read/write cycle.
type Prefixed32 struct{}

func (Prefixed32) Name() string { return NamePrefixed32 }

func (Prefixed32) Read(r *cursor.Reader) (string, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return "", cursor.WithField("length", err)
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (Prefixed32) Write(w *cursor.Writer, s string) {
	w.WriteUint32(uint32(len(s)))
	w.WriteBytes([]byte(s))
}
