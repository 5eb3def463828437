package auth

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Sign computes the HMAC-SHA256 of message keyed by secret and renders
// it as 64 lowercase hex characters. This is the trust primitive every
// other signing operation in this package composes.
func Sign(secret, message []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// BodyChecksum computes the MD5 digest of a request body as 32
// lowercase hex characters. The verifying server expects this as a
// body-integrity token in the body_md5 parameter; MD5 is kept solely
// for wire compatibility and must not be used as a security primitive.
func BodyChecksum(body []byte) string {
	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])
}
