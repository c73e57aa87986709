package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// Hasher derives one-way password digests and checks plaintexts against them.
// Verify never panics or errors: any mismatch or malformed digest is false.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// NewHasher returns the Hasher registered under scheme.
func NewHasher(scheme string) (Hasher, error) {
	switch scheme {
	case SchemeSHA256, "":
		return SHA256Hasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// SHA256Hasher produces base64(SHA-256(password)). The digest is
// deterministic, which keeps it compatible with the seeded credentials.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(plaintext, digest string) bool {
	want, _ := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(want), []byte(digest)) == 1
}

// BcryptHasher salts every digest, so Hash is not deterministic.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(out), nil
}

func (BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
