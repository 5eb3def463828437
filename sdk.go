package serversdk

import (
	"github.com/benbjohnson/clock"
	"go.channelcast.dev/server-sdk/channelcast"
	"go.channelcast.dev/server-sdk/internal/client"
	"go.channelcast.dev/server-sdk/pkg/auth"
)

// DefaultHost is the API host used when no override is configured.
const DefaultHost = "https://api.channelcast.dev"

// NewSDK creates a new SDK with the specified options.
func NewSDK(options ...Option) *SDK {
	// Create the raw client
	cfg := &client.Config{
		Host:    DefaultHost,
		Clock:   clock.New(),
		Encoder: auth.JSONEncoder{},
	}
	for _, option := range options {
		option(cfg)
	}
	rawClient := client.New(cfg)

	// Now create the SDK struct
	return &SDK{
		ChannelCast: channelcast.NewClient(rawClient),
	}
}

// SDK is the main SDK for communicating with the ChannelCast platform.
type SDK struct {
	// ChannelCast is the client for publishing events, authorizing
	// channel subscriptions and verifying webhook deliveries.
	ChannelCast *channelcast.Client
}
