package client

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"go.channelcast.dev/server-sdk/pkg/auth"
)

// Config is the configuration for the client.
type Config struct {
	Host        string               // The host to use
	Clock       clock.Clock          // The clock used for auth timestamps
	Credentials auth.Credentials     // The application credentials used to sign requests
	Encoder     auth.UserDataEncoder // The encoder for presence channel user data
	HTTPClient  *http.Client         // The underlying HTTP client to use
}
