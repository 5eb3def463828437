package channelcast

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.channelcast.dev/server-sdk/channelcast/types"
	"go.channelcast.dev/server-sdk/pkg/auth"
)

// Header names ChannelCast sets on webhook deliveries.
const (
	WebhookKeyHeader       = "X-ChannelCast-Key"
	WebhookSignatureHeader = "X-ChannelCast-Signature"
)

// ParseWebhook verifies the authenticity of a webhook delivery and
// decodes its payload.
//
// The signature header carries the hex HMAC-SHA256 of the raw request
// body keyed with the application secret; the body is only decoded
// after the signature checks out.
func (c *Client) ParseWebhook(req *http.Request) (*types.WebhookPayload, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read webhook body: %w", err)
	}

	err = auth.VerifyWebhook(
		c.client.Credentials(),
		req.Header.Get(WebhookKeyHeader),
		req.Header.Get(WebhookSignatureHeader),
		body,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to verify webhook: %w", err)
	}

	payload := &types.WebhookPayload{}
	if err := json.Unmarshal(body, payload); err != nil {
		return nil, fmt.Errorf("unable to unmarshal webhook body: %w", err)
	}

	return payload, nil
}
