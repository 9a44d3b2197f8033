// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/ssargent/gearsave/pkg/gear"
)

// SnapshotStoreCloser is a SnapshotStore that owns resources
type SnapshotStoreCloser interface {
	SnapshotStore

	// Close releases the underlying database
	Close() error
}

// SnapshotStoreFactory opens snapshot stores
type SnapshotStoreFactory interface {
	// OpenSnapshotStore opens the archive under dataDir
	OpenSnapshotStore(dataDir string) (SnapshotStoreCloser, error)
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer runs the API server until ctx is cancelled
	StartServer(ctx context.Context, store SnapshotStore, codec *gear.Codec, config ServerConfig) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
