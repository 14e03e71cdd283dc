// Package id generates random identifiers from crypto/rand.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// UpperAlphanumeric is the alphabet of ticket tracking codes.
	UpperAlphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	DefaultLength = 12
)

// Generate returns a random string of length characters drawn uniformly
// from alphabet.
func Generate(alphabet string, length int) (string, error) {
	if alphabet == "" {
		return "", fmt.Errorf("empty alphabet")
	}
	if length <= 0 {
		length = DefaultLength
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}
