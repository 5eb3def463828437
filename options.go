package serversdk

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"go.channelcast.dev/server-sdk/internal/client"
	"go.channelcast.dev/server-sdk/pkg/auth"
)

// Option is a function that can be passed to NewSDK to configure the SDK.
type Option func(config *client.Config)

// WithHost configures the SDK to use the specified host, overriding the default.
func WithHost(host string) Option {
	return func(config *client.Config) {
		config.Host = host
	}
}

// WithCredentials configures the SDK to sign on behalf of the specified
// application. The secret is held in memory for signing only and is
// never sent with a request.
func WithCredentials(appID, key, secret string) Option {
	return func(config *client.Config) {
		config.Credentials = auth.Credentials{
			AppID:  appID,
			Key:    key,
			Secret: secret,
		}
	}
}

// WithClock configures the SDK to use the specified clock for auth
// timestamps.
//
// This is useful for testing with a mocked clock, if not
// specified a real clock will be used.
func WithClock(clock clock.Clock) Option {
	return func(config *client.Config) {
		config.Clock = clock
	}
}

// WithUserDataEncoder configures the encoder used for presence channel
// user data.
//
// The default encoder is [auth.JSONEncoder]. Callers that need
// byte-exact reproducibility across environments should provide an
// encoder with a fixed field order.
func WithUserDataEncoder(encoder auth.UserDataEncoder) Option {
	return func(config *client.Config) {
		config.Encoder = encoder
	}
}

// WithHTTPClient configures the SDK to send requests with the specified
// HTTP client instead of [http.DefaultClient].
func WithHTTPClient(httpClient *http.Client) Option {
	return func(config *client.Config) {
		config.HTTPClient = httpClient
	}
}
