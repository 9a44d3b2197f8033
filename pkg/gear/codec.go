package gear

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ssargent/gearsave/pkg/cursor"
	"github.com/ssargent/gearsave/pkg/strcodec"
)

var (
	ErrUnknownKind   = errors.New("unknown record kind")
	ErrInvalidRecord = errors.New("invalid record")
)

// Kind names a record variant.
type Kind string

const (
	KindPlayerCharacter Kind = "gearpc"
	KindController      Kind = "gearcontroller"
)

// Kinds lists every supported record variant.
var Kinds = []Kind{KindPlayerCharacter, KindController}

// ParseKind resolves a kind name or one of its aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gearpc", "pc", "player":
		return KindPlayerCharacter, nil
	case "gearcontroller", "controller", "ctl":
		return KindController, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Record is implemented by *PlayerCharacterRecord and *ControllerRecord.
type Record interface {
	Kind() Kind
	Validate() error
	wire() (layout, fields)
}

// NewEmptyRecord returns a zero-valued record of the given kind with no
// opaque blocks. Text imports decode into it so that a block missing from
// the input stays nil and fails Validate instead of being defaulted.
func NewEmptyRecord(kind Kind) (Record, error) {
	switch kind {
	case KindPlayerCharacter:
		return &PlayerCharacterRecord{}, nil
	case KindController:
		return &ControllerRecord{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// NewRecord returns a synthetic record of the given kind with zero-filled
// opaque blocks. Use NewEmptyRecord as the target of JSON or YAML input.
func NewRecord(kind Kind) (Record, error) {
	switch kind {
	case KindPlayerCharacter:
		return NewPlayerCharacterRecord(), nil
	case KindController:
		return NewControllerRecord(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// MismatchError reports a buffer that did not survive a decode/encode cycle.
type MismatchError struct {
	Kind    Kind
	Offset  int // first differing byte
	WantLen int
	GotLen  int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s round trip differs at offset %d (input %d bytes, output %d bytes)",
		e.Kind, e.Offset, e.WantLen, e.GotLen)
}

// Codec decodes and encodes records with one string encoding.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	strings  strcodec.Codec
	capacity int
}

type Option func(*Codec)

// WithStringCodec sets the length-prefixed string encoding.
func WithStringCodec(sc strcodec.Codec) Option {
	return func(c *Codec) {
		if sc != nil {
			c.strings = sc
		}
	}
}

// WithCapacityHint sets the initial size of encode buffers.
func WithCapacityHint(n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// NewCodec creates a codec. The defaults are Prefixed32 strings and a
// 1 KiB initial encode buffer.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		strings:  strcodec.Prefixed32{},
		capacity: cursor.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StringCodec returns the string encoding in use.
func (c *Codec) StringCodec() strcodec.Codec {
	return c.strings
}

// Decode decodes data as a record of the given kind. Nothing is returned
// on failure; there is no partial decode.
func (c *Codec) Decode(kind Kind, data []byte) (Record, error) {
	rec, err := NewEmptyRecord(kind)
	if err != nil {
		return nil, err
	}
	l, f := rec.wire()
	if err := l.decode(cursor.NewReader(data), c.strings, f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", l.kind, err)
	}
	return rec, nil
}

// Encode writes rec in wire order. It has no failure path: opaque blocks
// are written as they are, whatever their length. Use Validate first when
// rec was built or edited by hand.
func (c *Codec) Encode(rec Record) []byte {
	l, f := rec.wire()
	w := cursor.NewWriter(c.capacity)
	l.encode(w, c.strings, f)
	return w.Bytes()
}

// Verify decodes data and encodes it again, reporting the first byte that
// differs.
func (c *Codec) Verify(kind Kind, data []byte) error {
	rec, err := c.Decode(kind, data)
	if err != nil {
		return err
	}
	out := c.Encode(rec)
	n := min(len(out), len(data))
	for i := 0; i < n; i++ {
		if out[i] != data[i] {
			return &MismatchError{Kind: kind, Offset: i, WantLen: len(data), GotLen: len(out)}
		}
	}
	if len(out) != len(data) {
		return &MismatchError{Kind: kind, Offset: n, WantLen: len(data), GotLen: len(out)}
	}
	return nil
}

func (c *Codec) DecodePlayerCharacter(data []byte) (*PlayerCharacterRecord, error) {
	rec, err := c.Decode(KindPlayerCharacter, data)
	if err != nil {
		return nil, err
	}
	return rec.(*PlayerCharacterRecord), nil
}

func (c *Codec) EncodePlayerCharacter(r *PlayerCharacterRecord) []byte {
	return c.Encode(r)
}

func (c *Codec) DecodeController(data []byte) (*ControllerRecord, error) {
	rec, err := c.Decode(KindController, data)
	if err != nil {
		return nil, err
	}
	return rec.(*ControllerRecord), nil
}

func (c *Codec) EncodeController(r *ControllerRecord) []byte {
	return c.Encode(r)
}

// LossyFloats lists the float fields of rec holding a NaN payload that the
// JSON and YAML forms cannot reproduce. Such a record only round-trips
// through its binary form.
func LossyFloats(rec Record) []string {
	_, f := rec.wire()
	var lossy []string
	for _, v := range []struct {
		name string
		val  float32
	}{
		{"floatOne", *f.floatOne},
		{"coordinates.x", f.coordinates.X},
		{"coordinates.y", f.coordinates.Y},
		{"coordinates.z", f.coordinates.Z},
	} {
		if !textLossless(v.val) {
			lossy = append(lossy, v.name)
		}
	}
	return lossy
}
