// Package codes generates redemption codes for tickets.
package codes

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Generate returns an uppercase hex string of n random bytes.
func Generate(n int) (string, error) {
	byt := make([]byte, n)
	if _, err := rand.Read(byt); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(byt)), nil
}

// Redemption returns a ticket redemption code. 8 random bytes keep the code
// short enough to type at the gate while collisions stay negligible.
func Redemption() (string, error) {
	return Generate(8)
}
