package storage

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *SnapshotStore {
	t.Helper()
	s, err := NewSnapshotStore(filepath.Join(t.TempDir(), "snapshots"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSnapshotStore_CreateRead(t *testing.T) {
	s := openStore(t)
	payload := []byte{0x00, 0x01, 0xFF, 'T', 'a', 'n', 'k'}

	before := time.Now().Add(-time.Second)
	id, err := s.Create("gearpc", payload)
	require.NoError(t, err)
	assert.NotEqual(t, ksuid.Nil, id)

	snap, err := s.Read(id)
	require.NoError(t, err)
	assert.Equal(t, id, snap.ID)
	assert.Equal(t, "gearpc", snap.Kind)
	assert.Equal(t, payload, snap.Data)
	assert.True(t, snap.CreatedAt.After(before))

	// the returned data is a copy
	snap.Data[0] = 0xEE
	again, err := s.Read(id)
	require.NoError(t, err)
	assert.Equal(t, payload, again.Data)
}

func TestSnapshotStore_EmptyPayload(t *testing.T) {
	s := openStore(t)

	id, err := s.Create("gearcontroller", nil)
	require.NoError(t, err)

	snap, err := s.Read(id)
	require.NoError(t, err)
	assert.Equal(t, "gearcontroller", snap.Kind)
	assert.Empty(t, snap.Data)
}

func TestSnapshotStore_InvalidKind(t *testing.T) {
	s := openStore(t)

	_, err := s.Create("", []byte("x"))
	assert.True(t, errors.Is(err, ErrInvalidKind))

	_, err = s.Create(string(bytes.Repeat([]byte("k"), 256)), []byte("x"))
	assert.True(t, errors.Is(err, ErrInvalidKind))
}

func TestSnapshotStore_List(t *testing.T) {
	s := openStore(t)

	infos, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, infos)

	var ids []ksuid.KSUID
	for i, kind := range []string{"gearpc", "gearcontroller", "gearpc"} {
		id, err := s.Create(kind, bytes.Repeat([]byte{0xAA}, i+1))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	infos, err = s.List()
	require.NoError(t, err)
	require.Len(t, infos, 3)

	ksuid.Sort(ids)
	for i, info := range infos {
		assert.Equal(t, ids[i].String(), info.ID)
		assert.False(t, info.CreatedAt.IsZero())
	}

	total := 0
	for _, info := range infos {
		total += info.Size
	}
	assert.Equal(t, 1+2+3, total)
}

func TestSnapshotStore_Delete(t *testing.T) {
	s := openStore(t)

	id, err := s.Create("gearpc", []byte("data"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(id))

	_, err = s.Read(id)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = s.Delete(id)
	assert.True(t, errors.Is(err, ErrNotFound))

	infos, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestSnapshotStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots")

	s, err := NewSnapshotStore(path)
	require.NoError(t, err)
	id, err := s.Create("gearpc", []byte("persisted"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewSnapshotStore(path)
	require.NoError(t, err)
	defer s.Close()

	snap, err := s.Read(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), snap.Data)
}

func TestParseID(t *testing.T) {
	id := ksuid.New()

	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-a-ksuid")
	assert.True(t, errors.Is(err, ErrNotFound))
}
