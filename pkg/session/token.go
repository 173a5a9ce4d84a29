package session

import (
	"encoding/hex"
	"fmt"
	"io"
)

// tokenBytes is the amount of entropy in a token, 256 bits.
const tokenBytes = 32

// TokenLength is the length of an encoded token.
const TokenLength = tokenBytes * 2

func generateToken(r io.Reader) (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("session: failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
