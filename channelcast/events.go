package channelcast

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.channelcast.dev/server-sdk/channelcast/types"
)

// Trigger publishes an event with the given name and serialized data
// to a single channel.
//
// It returns the event ID assigned by the platform and any error
// encountered.
func (c *Client) Trigger(ctx context.Context, channel, eventName, data string) (eventID string, err error) {
	return c.TriggerMulti(ctx, []string{channel}, eventName, data)
}

// TriggerMulti publishes an event to every channel in channels in a
// single signed request.
func (c *Client) TriggerMulti(ctx context.Context, channels []string, eventName, data string) (eventID string, err error) {
	params := &types.TriggerParams{
		Name:     eventName,
		Channels: channels,
		Data:     data,
	}
	if err := params.Validate(); err != nil {
		return "", fmt.Errorf("invalid trigger parameters: %w", err)
	}
	resp := &types.TriggerResponse{}

	err = c.client.SignedCall(
		ctx,
		http.MethodPost,
		fmt.Sprintf("/apps/%s/events", url.PathEscape(c.client.Credentials().AppID)),
		nil,
		params, resp,
	)
	if err != nil {
		return "", fmt.Errorf("unable to publish event: %w", err)
	}

	return resp.EventID, nil
}
