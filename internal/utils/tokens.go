package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSessionNonce — криптослучайный идентификатор для jti сессионного
// токена.
func NewSessionNonce(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 16
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
