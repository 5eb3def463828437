package auth

// Credentials identify a ChannelCast application to the platform.
// The Secret is only ever used as an HMAC key and must never be
// transmitted or logged; only signatures derived from it go on the wire.
type Credentials struct {
	AppID  string `json:"app_id"`
	Key    string `json:"key"`
	Secret string `json:"secret" channelcast:"sensitive"` // HMAC signing key
}

// Param is a single query parameter as raw bytes. No percent-encoding
// is applied at this layer; the raw key and value bytes are what gets
// signed, and the caller percent-encodes when building an actual URL.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters.
type Params []Param

// UserDataEncoder serializes the user data attached to a presence
// channel subscription. The encoded bytes become part of the signing
// input, so an encoder must be deterministic: two calls with the same
// data must yield the same bytes, or signatures stop being reproducible.
type UserDataEncoder interface {
	EncodeUserData(data any) ([]byte, error)
}

// JSONEncoder is the default UserDataEncoder. It is deterministic for
// struct-shaped data; callers needing byte-exact output for map-shaped
// data across environments should supply their own encoder.
type JSONEncoder struct{}

func (JSONEncoder) EncodeUserData(data any) ([]byte, error) {
	return json.Marshal(data)
}
