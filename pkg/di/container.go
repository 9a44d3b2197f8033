// Package di provides dependency injection container
package di

import (
	"fmt"

	"github.com/ssargent/gearsave/pkg/api" //nolint:depguard
	"github.com/ssargent/gearsave/pkg/config"
	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/ssargent/gearsave/pkg/strcodec"
)

// Container holds all the dependencies for the application
type Container struct {
	snapshotStoreFactory api.SnapshotStoreFactory
	serverFactory        api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		snapshotStoreFactory: api.NewSnapshotStoreFactory(),
		serverFactory:        api.NewServerFactory(),
	}
}

// NewCodec builds the record codec described by cfg
func (c *Container) NewCodec(cfg config.Codec) (*gear.Codec, error) {
	sc, err := strcodec.ByName(cfg.StringEncoding)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return gear.NewCodec(
		gear.WithStringCodec(sc),
		gear.WithCapacityHint(cfg.CapacityHint),
	), nil
}

// GetSnapshotStoreFactory returns the snapshot store factory
func (c *Container) GetSnapshotStoreFactory() api.SnapshotStoreFactory {
	return c.snapshotStoreFactory
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetSnapshotStoreFactory allows overriding the snapshot store factory (for testing)
func (c *Container) SetSnapshotStoreFactory(factory api.SnapshotStoreFactory) {
	c.snapshotStoreFactory = factory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}
