package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken returns a hex string of 2*n characters from a CSPRNG.
// Used for JWT IDs.
func RandomToken(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
