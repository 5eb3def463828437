package channelcast

import (
	"go.channelcast.dev/server-sdk/internal/client"
)

// Client is the SDK for communicating with the ChannelCast API services.
type Client struct {
	client *client.Client
}

func NewClient(client *client.Client) *Client {
	return &Client{client}
}
