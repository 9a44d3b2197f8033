package di

import (
	"context"
	"testing"

	"github.com/ssargent/gearsave/pkg/api"
	"github.com/ssargent/gearsave/pkg/config"
	"github.com/ssargent/gearsave/pkg/gear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStarter struct{ called bool }

func (s *stubStarter) StartServer(context.Context, api.SnapshotStore, *gear.Codec, api.ServerConfig) error {
	s.called = true
	return nil
}

type stubServerFactory struct{ starter *stubStarter }

func (f stubServerFactory) CreateServerStarter() api.ServerStarter { return f.starter }

func TestContainer_Defaults(t *testing.T) {
	c := NewContainer()

	assert.NotNil(t, c.GetSnapshotStoreFactory())
	assert.NotNil(t, c.GetServerFactory())
	assert.IsType(t, &api.DefaultSnapshotStoreFactory{}, c.GetSnapshotStoreFactory())
	assert.IsType(t, &api.DefaultServerFactory{}, c.GetServerFactory())
}

func TestContainer_Overrides(t *testing.T) {
	c := NewContainer()
	starter := &stubStarter{}
	c.SetServerFactory(stubServerFactory{starter: starter})

	err := c.GetServerFactory().CreateServerStarter().StartServer(context.Background(), nil, nil, api.ServerConfig{})
	require.NoError(t, err)
	assert.True(t, starter.called)
}

func TestContainer_NewCodec(t *testing.T) {
	c := NewContainer()

	codec, err := c.NewCodec(config.Codec{StringEncoding: "fstring", CapacityHint: 64})
	require.NoError(t, err)
	assert.Equal(t, "fstring", codec.StringCodec().Name())

	codec, err = c.NewCodec(config.Codec{})
	require.NoError(t, err)
	assert.Equal(t, "prefixed32", codec.StringCodec().Name())

	_, err = c.NewCodec(config.Codec{StringEncoding: "ebcdic"})
	assert.Error(t, err)
}
