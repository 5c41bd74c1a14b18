package commands

import (
	"os"
	"time"

	"hrm/backend/internal/auth"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	accessTokenTTL  = 8 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// TokenClaims is the identity a token pair is minted for.
type TokenClaims struct {
	ID   int
	Role string
}

// GenToken mints an access/refresh token pair signed with the RSA key at
// privateKeyPath.
func GenToken(claims TokenClaims, privateKeyPath string) (accessToken string, refreshToken string, err error) {
	data, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return "", "", errors.Wrap(err, "reading private key")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return "", "", errors.Wrap(err, "parsing private key")
	}

	now := time.Now()

	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodRS256, auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTTL).Unix(),
		},
		UserId: claims.ID,
		Role:   claims.Role,
		Type:   "access",
	}).SignedString(privateKey)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodRS256, auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(refreshTokenTTL).Unix(),
		},
		UserId: claims.ID,
		Role:   claims.Role,
		Type:   "refresh",
	}).SignedString(privateKey)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens validates a presented access/refresh pair. The access token's
// signature must check out even when expired; the refresh token must be live
// and belong to the same user.
func VerifyTokens(accessToken, refreshToken, privateKeyPath string) (*auth.Claims, *auth.Claims, error) {
	data, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading private key")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parsing private key")
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return &privateKey.PublicKey, nil
	}

	var accessClaims auth.Claims
	if _, err = jwt.ParseWithClaims(accessToken, &accessClaims, keyFunc); err != nil {
		// An expired access token is exactly what a refresh is for.
		validationErr, ok := err.(*jwt.ValidationError)
		if !ok || validationErr.Errors != jwt.ValidationErrorExpired {
			return nil, nil, errors.Wrap(err, "parsing access token")
		}
	}

	var refreshClaims auth.Claims
	parsed, err := jwt.ParseWithClaims(refreshToken, &refreshClaims, keyFunc)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parsing refresh token")
	}
	if !parsed.Valid {
		return nil, nil, errors.New("invalid refresh token")
	}
	if refreshClaims.Type != "refresh" {
		return nil, nil, errors.New("token is not a refresh token")
	}
	if refreshClaims.UserId != accessClaims.UserId {
		return nil, nil, errors.New("token pair mismatch")
	}

	return &accessClaims, &refreshClaims, nil
}
