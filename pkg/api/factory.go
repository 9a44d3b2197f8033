// Package api provides factory implementations for dependency injection
package api

import (
	"context"
	"path/filepath"

	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/ssargent/gearsave/pkg/storage"
)

// SnapshotDirName is the pebble directory created under the data directory
const SnapshotDirName = "snapshots"

// DefaultSnapshotStoreFactory is the default implementation of SnapshotStoreFactory
type DefaultSnapshotStoreFactory struct{}

// NewSnapshotStoreFactory creates a new snapshot store factory
func NewSnapshotStoreFactory() SnapshotStoreFactory {
	return &DefaultSnapshotStoreFactory{}
}

// OpenSnapshotStore opens the pebble-backed store under dataDir
func (f *DefaultSnapshotStoreFactory) OpenSnapshotStore(dataDir string) (SnapshotStoreCloser, error) {
	store, err := storage.NewSnapshotStore(filepath.Join(dataDir, SnapshotDirName))
	if err != nil {
		return nil, err
	}
	return store, nil
}

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, store SnapshotStore, codec *gear.Codec, config ServerConfig) error {
	return StartServer(ctx, store, codec, config)
}
