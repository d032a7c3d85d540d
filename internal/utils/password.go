package utils

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password using bcrypt. The plaintext is
// never logged.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
// Returns false on any mismatch or malformed hash, never panics.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*"

	candidateLength = 12
)

// GeneratePasswordCandidate produces a 12-character suggestion containing at
// least one uppercase letter, one lowercase letter, one digit and one symbol,
// with the remainder drawn uniformly from the combined alphabet and the
// result shuffled. UI convenience only; not for secrets crossing a trust
// boundary.
func GeneratePasswordCandidate() string {
	combined := lowercaseChars + uppercaseChars + digitChars + symbolChars

	var b strings.Builder
	b.WriteByte(uppercaseChars[rand.IntN(len(uppercaseChars))])
	b.WriteByte(lowercaseChars[rand.IntN(len(lowercaseChars))])
	b.WriteByte(digitChars[rand.IntN(len(digitChars))])
	b.WriteByte(symbolChars[rand.IntN(len(symbolChars))])
	for b.Len() < candidateLength {
		b.WriteByte(combined[rand.IntN(len(combined))])
	}

	chars := []byte(b.String())
	rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})
	return string(chars)
}
