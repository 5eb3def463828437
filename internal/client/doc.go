// Package client provides a generic client for communicating with the
// ChannelCast REST API. Every request it sends carries the query-string
// authentication scheme the platform verifies: the auth parameters and
// HMAC signature are computed over the raw request bytes before any
// URL encoding is applied.
package client
