// Package token issues and verifies the signed bearer tokens that carry a
// principal's identity between requests. Tokens are stateless: nothing is
// stored server-side and the only way to invalidate one is to let it expire.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

const defaultTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified payload of a bearer token.
type Claims struct {
	PrincipalID string
	Kind        domain.PrincipalKind
}

// Issuer signs and verifies HS256 tokens with a shared server secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an Issuer. An empty secret is a configuration error and
// must abort startup; it is never recoverable per request.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is empty")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces a signed token for the given principal. Two tokens issued
// for the same principal at different times are distinct and independently
// valid.
func (i *Issuer) Issue(principalID string, kind domain.PrincipalKind) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  principalID,
		"type": string(kind),
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses and validates a token string. It fails with ErrInvalidToken
// when the signature does not match, the token is malformed or expired, or
// the embedded principal kind is unknown.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	kindStr, _ := claims["type"].(string)
	kind := domain.PrincipalKind(kindStr)
	if sub == "" || !kind.Valid() {
		return nil, ErrInvalidToken
	}

	return &Claims{PrincipalID: sub, Kind: kind}, nil
}
