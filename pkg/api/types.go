package api

import (
	"time"

	"github.com/segmentio/ksuid"
	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/ssargent/gearsave/pkg/storage"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// VerifyResponse reports the result of a decode/encode cycle
type VerifyResponse struct {
	OK         bool `json:"ok"`
	Offset     int  `json:"offset"`
	InputSize  int  `json:"input_size"`
	OutputSize int  `json:"output_size"`
}

// SnapshotResponse describes a stored snapshot
type SnapshotResponse struct {
	ID        string      `json:"id" yaml:"id"`
	Kind      string      `json:"kind" yaml:"kind"`
	Size      int         `json:"size" yaml:"size"`
	CreatedAt time.Time   `json:"created_at" yaml:"created_at"`
	Record    gear.Record `json:"record,omitempty" yaml:"record,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port          int
	Bind          string
	APIKey        string
	MaxRecordSize int64 // request bodies above this size are rejected
}

// SnapshotStore defines the snapshot archive operations used by the API
type SnapshotStore interface {
	Create(kind string, data []byte) (ksuid.KSUID, error)
	Read(id ksuid.KSUID) (*storage.Snapshot, error)
	List() ([]storage.SnapshotInfo, error)
	Delete(id ksuid.KSUID) error
}
