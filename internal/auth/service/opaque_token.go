package service

import (
	"crypto/rand"
	"encoding/base64"
	"io"
)

// newOpaqueToken returns a base64url-encoded token of n random bytes. Used
// for refresh tokens, ephemeral tokens and OAuth state values.
func newOpaqueToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
