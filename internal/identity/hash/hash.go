// Package hash provides salted password hashing and verification.
package hash

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is 128 bits, enough to make precomputed tables infeasible.
	SaltLength = 16
	// KeyLength matches the SHA-512 output size.
	KeyLength = 64
	// Iterations follows the current OWASP recommendation for PBKDF2-SHA512.
	Iterations = 210_000
)

// Hasher derives and verifies salted PBKDF2-SHA512 password hashes.
// The zero value is ready to use.
type Hasher struct{}

// New creates a new Hasher.
func New() *Hasher {
	return &Hasher{}
}

// Hash derives a hash from password using a freshly generated random salt
// and returns both. It fails only if the random source does.
func (h *Hasher) Hash(password string) (hashed, salt []byte, err error) {
	salt = make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}

	hashed = pbkdf2.Key([]byte(password), salt, Iterations, KeyLength, sha512.New)
	return hashed, salt, nil
}

// Verify recomputes the hash of password with the stored salt and compares it
// to the stored hash in constant time. Any mismatch, including malformed or
// truncated inputs, yields false.
//
// The derived key is always computed at full length; deriving at
// len(storedHash) would let a truncated stored hash verify, since PBKDF2
// output is prefix-stable.
func (h *Hasher) Verify(password string, storedHash, storedSalt []byte) bool {
	if len(storedHash) == 0 || len(storedSalt) == 0 {
		return false
	}

	computed := pbkdf2.Key([]byte(password), storedSalt, Iterations, KeyLength, sha512.New)
	return subtle.ConstantTimeCompare(computed, storedHash) == 1
}
