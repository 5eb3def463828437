// Package crypto implements payload encryption for encrypted channels.
//
// Each encrypted channel derives its own symmetric key from the channel
// name and the application master key; event payloads on the channel
// are sealed with NaCl secretbox so the platform relays them without
// being able to read them.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrDecryptionFailed = errors.New("payload could not be authenticated and decrypted")

// SharedSecret derives the per-channel encryption key as the SHA-256
// of the channel name bytes followed by the master key bytes. The
// derivation is deterministic so both the publishing server and the
// subscribing client arrive at the same key independently.
func SharedSecret(channelName string, masterKey []byte) [32]byte {
	h := sha256.New()
	h.Write([]byte(channelName))
	h.Write(masterKey)

	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}

// EncryptPayload seals payload with the channel's shared secret. The
// returned ciphertext has the random 24-byte nonce prepended.
func EncryptPayload(payload []byte, sharedSecret [32]byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], payload, &nonce, &sharedSecret), nil
}

// DecryptPayload opens a ciphertext produced by EncryptPayload.
func DecryptPayload(ciphertext []byte, sharedSecret [32]byte) ([]byte, error) {
	if len(ciphertext) < nonceSize {
		return nil, ErrDecryptionFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], ciphertext[:nonceSize])

	payload, ok := secretbox.Open(nil, ciphertext[nonceSize:], &nonce, &sharedSecret)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return payload, nil
}
