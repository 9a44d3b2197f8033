// Package storage archives raw record buffers in a pebble database.
//
// Each snapshot is keyed by a KSUID, so iteration order is creation order
// and the creation time is recoverable from the key alone. The stored
// value is [kindLen u8][kind][payload].
package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	"github.com/ssargent/gearsave/pkg/cursor"
)

var (
	ErrNotFound    = errors.New("snapshot not found")
	ErrInvalidKind = errors.New("invalid snapshot kind")
	ErrCorrupt     = errors.New("corrupt snapshot value")
)

var snapshotPrefix = []byte("snap/")

// Snapshot is one archived record buffer.
type Snapshot struct {
	ID        ksuid.KSUID
	Kind      string
	Data      []byte
	CreatedAt time.Time
}

// SnapshotInfo describes a snapshot without its payload.
type SnapshotInfo struct {
	ID        string    `json:"id" yaml:"id"`
	Kind      string    `json:"kind" yaml:"kind"`
	Size      int       `json:"size" yaml:"size"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

type SnapshotStore struct {
	db *pebble.DB
}

func NewSnapshotStore(path string) (*SnapshotStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// ParseID parses the string form of a snapshot ID.
func ParseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("%w: %s", ErrNotFound, s)
	}
	return id, nil
}

func key(id ksuid.KSUID) []byte {
	return append(append([]byte(nil), snapshotPrefix...), id.Bytes()...)
}

func encodeValue(kind string, data []byte) []byte {
	w := cursor.NewWriter(1 + len(kind) + len(data))
	_ = w.WriteByte(byte(len(kind)))
	w.WriteBytes([]byte(kind))
	w.WriteBytes(data)
	return w.Bytes()
}

func decodeValue(v []byte) (string, []byte, error) {
	r := cursor.NewReader(v)
	n, err := r.ReadByte()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	kind, err := r.ReadBytes(int(n))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return string(kind), r.ReadRest(), nil
}

// Create stores data under a new ID.
func (s *SnapshotStore) Create(kind string, data []byte) (ksuid.KSUID, error) {
	if kind == "" || len(kind) > 255 {
		return ksuid.Nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	id := ksuid.New()
	if err := s.db.Set(key(id), encodeValue(kind, data), pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("store snapshot: %w", err)
	}
	return id, nil
}

func (s *SnapshotStore) Read(id ksuid.KSUID) (*Snapshot, error) {
	v, closer, err := s.db.Get(key(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", id, err)
	}
	defer closer.Close()

	// decodeValue copies, v is only valid until closer.Close
	kind, data, err := decodeValue(v)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", id, err)
	}
	return &Snapshot{ID: id, Kind: kind, Data: data, CreatedAt: id.Time()}, nil
}

// List returns every snapshot, oldest first.
func (s *SnapshotStore) List() ([]SnapshotInfo, error) {
	upper := append([]byte(nil), snapshotPrefix...)
	upper[len(upper)-1]++

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: snapshotPrefix,
		UpperBound: upper,
	})
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer iter.Close()

	infos := []SnapshotInfo{}
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key()[len(snapshotPrefix):])
		if err != nil {
			return nil, fmt.Errorf("list snapshots: %w: bad key", ErrCorrupt)
		}
		kind, data, err := decodeValue(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("list snapshots: %s: %w", id, err)
		}
		infos = append(infos, SnapshotInfo{
			ID:        id.String(),
			Kind:      kind,
			Size:      len(data),
			CreatedAt: id.Time(),
		})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return infos, nil
}

// Delete removes a snapshot. Deleting an unknown ID returns ErrNotFound.
func (s *SnapshotStore) Delete(id ksuid.KSUID) error {
	_, closer, err := s.db.Get(key(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("delete snapshot %s: %w", id, err)
	}
	closer.Close()

	if err := s.db.Delete(key(id), pebble.Sync); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", id, err)
	}
	return nil
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
