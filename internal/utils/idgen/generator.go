// Package idgen provides cryptographically secure identifier generation
// for entities stored and exposed by the API (conversations, messages,
// orders). IDs have the form "<prefix>_<random>", where the random part is
// drawn from the lowercase base36 alphabet to stay URL and log friendly.
package idgen

import (
	"crypto/rand"
	"fmt"
	"strings"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSecureID returns a new identifier "<prefix>_<random>" where the
// random suffix has exactly length characters from [a-z0-9]. Randomness
// comes from crypto/rand so IDs carry no timing or sequence information.
func GenerateSecureID(prefix string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("idgen: length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("idgen: read random bytes: %w", err)
	}

	suffix := make([]byte, length)
	for i, b := range buf {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}

	return prefix + "_" + string(suffix), nil
}

// ValidateIDFormat reports whether id matches "<expectedPrefix>_<suffix>"
// with a non-empty suffix of [a-z0-9] characters only.
func ValidateIDFormat(id, expectedPrefix string) bool {
	if !strings.HasPrefix(id, expectedPrefix+"_") {
		return false
	}

	suffix := id[len(expectedPrefix)+1:]
	if suffix == "" {
		return false
	}

	for _, char := range suffix {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}
