package auth

import (
	"crypto/hmac"
	"fmt"
	"regexp"
)

// socketIDPattern is the format the realtime server assigns to
// connection identifiers.
var socketIDPattern = regexp.MustCompile(`\A\d+\.\d+\z`)

// ValidSocketID reports whether socketID has the "123.456" shape the
// realtime server hands out. Signing itself never validates inputs;
// this exists for HTTP-facing layers that want to reject garbage
// before signing it.
func ValidSocketID(socketID string) bool {
	return socketIDPattern.MatchString(socketID)
}

// VerifyWebhook checks that a webhook delivery was signed by the
// platform with our application secret.
//
// key is the application key the platform claims to have signed with
// and signature is the hex HMAC-SHA256 it computed over the raw body.
// The comparison uses hmac.Equal to prevent timing attacks.
func VerifyWebhook(creds *Credentials, key, signature string, body []byte) error {
	switch {
	case key != creds.Key:
		return ErrUnknownKey
	case signature == "":
		return ErrMissingSignature
	}

	expected := Sign([]byte(creds.Secret), body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("%w: webhook body signature mismatch", ErrInvalidSignature)
	}
	return nil
}
