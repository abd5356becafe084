package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretSize is the shortest HMAC secret accepted by NewHS256.
const MinSecretSize = 32

// HS256 signs and verifies session tokens with a shared HMAC-SHA256 secret.
// It satisfies both Signer and Verifier.
type HS256 struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewHS256 returns an HS256 signer/verifier. Tokens whose "iss" does not
// match issuer are rejected when issuer is non-empty.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < MinSecretSize {
		return nil, ErrWeakSecret
	}

	// Copy so callers can't mutate the key underneath us.
	key := make([]byte, len(secret))
	copy(key, secret)

	return &HS256{secret: key, issuer: issuer, leeway: 5 * time.Second}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Issuer returns the issuer stamped on minted tokens.
func (h *HS256) Issuer() string { return h.issuer }

func (h *HS256) Sign(c Claims) (string, error) {
	if c.Subject == "" {
		return "", ErrInvalidClaim
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(h.secret)
}

// Verify validates the signature, issuer and lifetime of tokenStr.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(h.leeway),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		}
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryWithLeeway(h.leeway); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
