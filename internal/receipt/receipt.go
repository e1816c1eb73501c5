// Package receipt issues and verifies signed share receipts.
//
// A receipt is an HS256 JWT carrying a finished day's result so a shared grid
// can be checked later without trusting the pasted text. The signing key is
// derived from the configured secret with HKDF-SHA256.
package receipt

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const issuer = "bossdle"

// Claims is the receipt payload.
type Claims struct {
	Day      int      `json:"day"`
	Status   string   `json:"status"`
	Attempts int      `json:"attempts"`
	Grid     []string `json:"grid"`
	jwt.RegisteredClaims
}

type Signer struct {
	key []byte
	now func() time.Time
}

// NewSigner derives a 32-byte key from secret.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("receipt: empty secret")
	}
	key := make([]byte, 32)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte("bossdle receipt v1"))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("receipt: derive key: %w", err)
	}
	return &Signer{key: key, now: time.Now}, nil
}

// Sign returns the compact JWT for c. Issuer and issued-at are filled in.
func (s *Signer) Sign(c Claims) (string, error) {
	c.Issuer = issuer
	c.IssuedAt = jwt.NewNumericDate(s.now())
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.key)
}

// Verify parses token and checks its signature, algorithm and issuer.
func (s *Signer) Verify(token string) (*Claims, error) {
	c := &Claims{}
	_, err := jwt.ParseWithClaims(token, c, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("receipt: %w", err)
	}
	return c, nil
}
