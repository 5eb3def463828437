package channelcast

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.channelcast.dev/server-sdk/channelcast/types"
	"go.channelcast.dev/server-sdk/internal/jsonerr"
	"go.channelcast.dev/server-sdk/pkg/auth"
)

const (
	privatePrefix  = "private-"
	presencePrefix = "presence-"
)

// PresenceUserFunc resolves the user data to attach to a presence
// channel subscription, typically from the session carried by the
// incoming request. The returned value is encoded with the client's
// configured encoder and becomes part of the signed channel data.
type PresenceUserFunc func(req *http.Request, channelName string) (userData any, err error)

// AuthorizePrivateChannel produces the auth response granting the
// given connection access to a private channel.
func (c *Client) AuthorizePrivateChannel(socketID, channelName string) (*types.AuthResponse, error) {
	if !auth.ValidSocketID(socketID) {
		return nil, auth.ErrInvalidSocketID
	}

	token := auth.AuthenticatePrivateChannel(c.client.Credentials(), socketID, channelName)
	return &types.AuthResponse{Auth: token}, nil
}

// AuthorizePresenceChannel produces the auth response granting the
// given connection access to a presence channel, with userData
// attached as the member info broadcast to other subscribers.
func (c *Client) AuthorizePresenceChannel(socketID, channelName string, userData any) (*types.AuthResponse, error) {
	if !auth.ValidSocketID(socketID) {
		return nil, auth.ErrInvalidSocketID
	}

	token, channelData, err := auth.AuthenticatePresenceChannelWithEncoder(
		c.client.Credentials(), socketID, channelName, userData, c.client.Encoder(),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to authorize presence channel: %w", err)
	}

	return &types.AuthResponse{Auth: token, ChannelData: string(channelData)}, nil
}

// CreateAuthHandler returns a [http.HandlerFunc] that can be used as the
// channel auth endpoint realtime clients call before subscribing to a
// private or presence channel.
//
// The realtime client library sends a POST request with socket_id and
// channel_name form values. Private channels are authorized directly;
// presence channels additionally invoke presenceUser to resolve the
// member data for the requesting user. Channels without a private- or
// presence- prefix are public and never reach an auth endpoint, so
// requests for them are rejected.
func (c *Client) CreateAuthHandler(logger *zerolog.Logger, presenceUser PresenceUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		socketID := req.FormValue("socket_id")
		channelName := req.FormValue("channel_name")

		var response *types.AuthResponse
		var err error
		switch {
		case strings.HasPrefix(channelName, presencePrefix):
			var userData any
			userData, err = presenceUser(req, channelName)
			if err == nil {
				response, err = c.AuthorizePresenceChannel(socketID, channelName, userData)
			}

		case strings.HasPrefix(channelName, privatePrefix):
			response, err = c.AuthorizePrivateChannel(socketID, channelName)

		default:
			err = fmt.Errorf("channel %q does not require authorization", channelName)
		}

		if err != nil {
			logger.Err(err).Str("channel", channelName).Msg("error while authorizing channel subscription")
			jsonerr.Error(w, err, http.StatusForbidden)
			return
		}

		jsonerr.OK(w, response)
	}
}
