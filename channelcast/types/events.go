package types

import (
	"errors"
	"time"
)

// TriggerParams is the parameters for publishing an event to one or
// more channels.
type TriggerParams struct {
	Name     string   `json:"name"`
	Channels []string `json:"channels"`
	Data     string   `json:"data" channelcast:"sensitive"` // The event payload, already serialized.
	SocketID string   `json:"socket_id,omitempty"`          // Optional connection to exclude from delivery.
}

func (p *TriggerParams) Validate() error {
	if p.Name == "" {
		return errors.New("event name must be provided")
	}
	if len(p.Channels) == 0 {
		return errors.New("at least one channel must be provided")
	}

	return nil
}

// TriggerResponse is the response from publishing an event.
type TriggerResponse struct {
	EventID string `json:"event_id"`
}

// AuthResponse is the body returned to a realtime client from a
// channel auth endpoint. ChannelData is only set for presence
// channels and carries the exact encoded user data bytes that were
// signed, so the client can forward them verbatim.
type AuthResponse struct {
	Auth        string `json:"auth"`
	ChannelData string `json:"channel_data,omitempty"`
}

// WebhookPayload is the body ChannelCast sends to a registered
// webhook endpoint. The raw body bytes are signed with the
// application secret before delivery.
type WebhookPayload struct {
	TimeMs int64          `json:"time_ms"`
	Events []WebhookEvent `json:"events"`
}

// Time returns the payload timestamp as a time.Time.
func (p *WebhookPayload) Time() time.Time {
	return time.UnixMilli(p.TimeMs)
}

// WebhookEvent is a single channel lifecycle event within a webhook
// delivery.
type WebhookEvent struct {
	Name     string `json:"name"`
	Channel  string `json:"channel"`
	Event    string `json:"event,omitempty"`
	Data     string `json:"data,omitempty"`
	SocketID string `json:"socket_id,omitempty"`
	UserID   string `json:"user_id,omitempty"`
}
