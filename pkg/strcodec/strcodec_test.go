package strcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/gearsave/pkg/cursor"
)

func roundTrip(t *testing.T, c Codec, s string) []byte {
	t.Helper()
	w := cursor.NewWriter(0)
	c.Write(w, s)
	encoded := append([]byte(nil), w.Bytes()...)

	r := cursor.NewReader(encoded)
	got, err := c.Read(r)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.Equal(t, 0, r.Remaining())

	w2 := cursor.NewWriter(0)
	c.Write(w2, got)
	assert.Equal(t, encoded, w2.Bytes())
	return encoded
}

func TestByName(t *testing.T) {
	for name, want := range map[string]string{
		"":           NamePrefixed32,
		"prefixed32": NamePrefixed32,
		"PREFIXED32": NamePrefixed32,
		"fstring":    NameFString,
		" FString ":  NameFString,
	} {
		c, err := ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, c.Name())
	}

	_, err := ByName("utf-7")
	assert.Error(t, err)
}

func TestPrefixed32(t *testing.T) {
	c := Prefixed32{}

	t.Run("tank", func(t *testing.T) {
		encoded := roundTrip(t, c, "Tank")
		assert.Equal(t, []byte{0x04, 0x00, 0x00, 0x00, 'T', 'a', 'n', 'k'}, encoded)
	})

	t.Run("empty", func(t *testing.T) {
		encoded := roundTrip(t, c, "")
		assert.Equal(t, []byte{0, 0, 0, 0}, encoded)
	})

	t.Run("arbitrary bytes", func(t *testing.T) {
		roundTrip(t, c, string([]byte{0x00, 0xFF, 0x80, 0xC3}))
	})

	t.Run("length past end", func(t *testing.T) {
		_, err := c.Read(cursor.NewReader([]byte{0x10, 0, 0, 0, 'a'}))
		assert.ErrorIs(t, err, cursor.ErrTruncated)
	})

	t.Run("missing length", func(t *testing.T) {
		_, err := c.Read(cursor.NewReader([]byte{0x10}))
		assert.ErrorIs(t, err, cursor.ErrTruncated)
	})
}

func TestFString(t *testing.T) {
	c := FString{}

	t.Run("ansi", func(t *testing.T) {
		encoded := roundTrip(t, c, "Tank")
		assert.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 'T', 'a', 'n', 'k', 0x00}, encoded)
	})

	t.Run("latin1", func(t *testing.T) {
		encoded := roundTrip(t, c, "Café")
		assert.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 'C', 'a', 'f', 0xE9, 0x00}, encoded)
	})

	t.Run("wide", func(t *testing.T) {
		encoded := roundTrip(t, c, "Ж")
		assert.Equal(t, []byte{0xFE, 0xFF, 0xFF, 0xFF, 0x16, 0x04, 0x00, 0x00}, encoded)
	})

	t.Run("surrogate pair", func(t *testing.T) {
		roundTrip(t, c, "gear 🎯")
	})

	t.Run("empty", func(t *testing.T) {
		encoded := roundTrip(t, c, "")
		assert.Equal(t, []byte{0, 0, 0, 0}, encoded)
	})

	t.Run("missing terminator", func(t *testing.T) {
		_, err := c.Read(cursor.NewReader([]byte{0x02, 0, 0, 0, 'a', 'b'}))
		assert.ErrorIs(t, err, ErrMalformedString)
	})

	t.Run("unpaired surrogate", func(t *testing.T) {
		_, err := c.Read(cursor.NewReader([]byte{0xFE, 0xFF, 0xFF, 0xFF, 0x00, 0xD8, 0x00, 0x00}))
		assert.ErrorIs(t, err, ErrMalformedString)
	})

	t.Run("ansi past end", func(t *testing.T) {
		_, err := c.Read(cursor.NewReader([]byte{0x09, 0, 0, 0, 'a'}))
		assert.ErrorIs(t, err, cursor.ErrTruncated)
	})

	t.Run("wide past end", func(t *testing.T) {
		_, err := c.Read(cursor.NewReader([]byte{0xF0, 0xFF, 0xFF, 0xFF, 'a', 0}))
		assert.ErrorIs(t, err, cursor.ErrTruncated)
	})
}
