package cursor

import (
	"errors"
	"fmt"
)

// ErrTruncated matches any *TruncatedInputError through errors.Is.
var ErrTruncated = errors.New("truncated input")

// TruncatedInputError reports a read that ran past the end of the buffer.
type TruncatedInputError struct {
	Field  string // dotted field path, empty when the reader was not told
	Offset int    // byte offset where the failing read started
	Need   int    // bytes the read required
	Have   int    // bytes that were left
}

func (e *TruncatedInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("truncated input at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
	}
	return fmt.Sprintf("truncated input reading %s at offset %d: need %d bytes, have %d",
		e.Field, e.Offset, e.Need, e.Have)
}

// Is lets callers test with errors.Is(err, ErrTruncated).
func (e *TruncatedInputError) Is(target error) bool {
	return target == ErrTruncated
}

// WithField prefixes the field path of a truncation error with name.
// Other errors pass through untouched.
func WithField(name string, err error) error {
	var te *TruncatedInputError
	if err == nil || !errors.As(err, &te) {
		return err
	}
	if te.Field == "" {
		te.Field = name
	} else {
		te.Field = name + "." + te.Field
	}
	return err
}
