package auth

import (
	"errors"
)

var (
	ErrUnknownKey       = errors.New("webhook signed with an unknown application key")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrMissingSignature = errors.New("no signature header provided")
	ErrInvalidSocketID  = errors.New("invalid socket id format")
)
