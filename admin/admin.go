// Package admin implements the privileged-caller check gating registry
// mutation, cap changes and withdrawals.
//
// A Credential stores an Argon2id hash of the admin secret; hosts verify a
// caller-supplied secret against it before invoking privileged splitter
// operations.
package admin

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// Argon2id parameters for credential hashing.
	argon2Time        = 3
	argon2Memory      = 64 * 1024 // 64 MB
	argon2Parallelism = 4
	argon2KeyLen      = 32

	saltLen = 16
)

// Credential is an Argon2id-hashed admin secret.
type Credential struct {
	salt [saltLen]byte
	hash [argon2KeyLen]byte
}

// NewCredential hashes secret with a random salt.
func NewCredential(secret string) (*Credential, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	var c Credential
	if _, err := rand.Read(c.salt[:]); err != nil {
		return nil, fmt.Errorf("admin: generate salt: %w", err)
	}
	copy(c.hash[:], deriveKey(secret, c.salt[:]))
	return &c, nil
}

// Verify reports whether secret matches the credential, in constant time.
func (c *Credential) Verify(secret string) bool {
	derived := deriveKey(secret, c.salt[:])
	return subtle.ConstantTimeCompare(derived, c.hash[:]) == 1
}

// Encode returns the credential as hex: salt(16B) || hash(32B).
func (c *Credential) Encode() string {
	buf := make([]byte, 0, saltLen+argon2KeyLen)
	buf = append(buf, c.salt[:]...)
	buf = append(buf, c.hash[:]...)
	return hex.EncodeToString(buf)
}

// DecodeCredential parses a credential from its Encode form.
func DecodeCredential(encoded string) (*Credential, error) {
	data, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if len(data) != saltLen+argon2KeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidCredential, saltLen+argon2KeyLen, len(data))
	}

	var c Credential
	copy(c.salt[:], data[:saltLen])
	copy(c.hash[:], data[saltLen:])
	return &c, nil
}

// deriveKey runs Argon2id over the secret with the stored parameters.
func deriveKey(secret string, salt []byte) []byte {
	return argon2.IDKey([]byte(secret), salt, argon2Time, argon2Memory, argon2Parallelism, argon2KeyLen)
}
