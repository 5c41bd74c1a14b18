// Package auth holds the identity contract the rest of the service consumes:
// a verified token resolves to a user id and a role, nothing more.
package auth

import (
	"context"
	"crypto/rsa"
	"os"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

type ctxKey int

// Key is the context key the middleware stores Claims under.
const Key ctxKey = 1

type Claims struct {
	jwt.StandardClaims
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
}

// Authorized reports whether the claims' role is one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// GetClaims pulls the authenticated claims out of ctx.
func GetClaims(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(Key).(Claims)
	return claims, ok
}

type Auth struct {
	publicKey *rsa.PublicKey
}

// NewAuth loads the RSA private key at path and keeps its public half for
// token verification.
func NewAuth(privateKeyPath string) (*Auth, error) {
	data, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return &Auth{publicKey: &privateKey.PublicKey}, nil
}

// ValidateToken checks the signature and expiry of token and returns its
// claims.
func (a *Auth) ValidateToken(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !parsed.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}
