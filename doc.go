// Package serversdk is the server-side SDK for the ChannelCast realtime platform.
//
// It signs REST API requests with the query-string HMAC scheme the
// platform verifies, issues the one-time tokens realtime clients need
// to join private and presence channels, and verifies the signatures
// on webhook deliveries.
//
// # Overview of Packages
//
//   - serversdk - The main SDK package, constructs and configures a client
//   - channelcast - Publishing events, authorizing channels, parsing webhooks
//   - pkg/auth - The low-level signing primitives and canonicalization rules
//   - pkg/crypto - Payload encryption for encrypted channels
//
// The signing rules in pkg/auth are a wire contract shared with the
// verifying server: parameter ordering, field separators and hex
// encoding must match byte-for-byte or verification fails.
package serversdk
