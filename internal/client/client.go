package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.channelcast.dev/server-sdk/pkg/auth"
)

// Client is the underlying raw client for communicating with the ChannelCast REST API.
//
// It is injected into each service struct by the main [serversdk] package.
type Client struct {
	cfg *Config
}

func New(cfg *Config) *Client {
	return &Client{cfg}
}

// Credentials returns the application credentials this client signs with.
func (c *Client) Credentials() *auth.Credentials {
	return &c.cfg.Credentials
}

// Encoder returns the configured presence user data encoder.
func (c *Client) Encoder() auth.UserDataEncoder {
	return c.cfg.Encoder
}

// SignedCall performs a signed request to the specified path.
//
// The request body is JSON encoded and its raw bytes are included in
// the signature via the body_md5 parameter. The signature covers the
// unencoded parameter bytes; percent-encoding is applied only here,
// when the parameters are embedded into the request URL.
func (c *Client) SignedCall(ctx context.Context, method, path string, extraParams auth.Params, body any, response any) error {
	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	// Sign the request
	params := auth.BuildAuthParams(
		&c.cfg.Credentials, method, path,
		extraParams, bodyBytes, c.cfg.Clock.Now().Unix(),
	)

	// Build the request URL with the signed parameters
	query := make(url.Values, len(params))
	for _, param := range params {
		query.Set(param.Key, param.Value)
	}
	requestURL := fmt.Sprintf("%s%s?%s", c.cfg.Host, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set the headers
	req.Header.Set("User-Agent", "ChannelCast-Server-SDK")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Connection", "keep-alive")

	// Send the request
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response status %s", resp.Status)
	}

	// Decode the response
	if response != nil {
		if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.cfg.HTTPClient != nil {
		return c.cfg.HTTPClient
	}
	return http.DefaultClient
}
