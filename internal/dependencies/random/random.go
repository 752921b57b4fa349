package random

import (
	"crypto/rand"
	"math/big"
)

// SessionIDLength is the length of generated form session identifiers
const SessionIDLength = 12

// SessionIDAlphabet is the characters used in session IDs (avoid confusing chars)
const SessionIDAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"

// Random provides random string generation that can be mocked for testing
type Random interface {
	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// Fall back to the first character on error (should never
			// happen with crypto/rand)
			result[i] = alphabet[0]
			continue
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result)
}
