package auth

import (
	"fmt"
	"net/http"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/commands"
	"hrm/backend/internal/repository/postgres/user"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const refreshCacheTTL = 30 * 24 * time.Hour

type Controller struct {
	user           User
	cache          *redis.Client
	privateKeyPath string
}

func NewController(user User, cache *redis.Client, privateKeyPath string) *Controller {
	return &Controller{user: user, cache: cache, privateKeyPath: privateKeyPath}
}

func refreshKey(userID int) string {
	return fmt.Sprintf("refresh_token:%d", userID)
}

func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	if err := c.BindFunc(&data, "Email", "Password"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, *data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil || detail.Role == nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid email or password"), http.StatusUnauthorized))
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(*data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid email or password"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(commands.TokenClaims{
		ID:   detail.ID,
		Role: *detail.Role,
	}, uc.privateKeyPath)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating tokens"), http.StatusInternalServerError))
	}

	if err = uc.cache.Set(c.Ctx, refreshKey(detail.ID), refreshToken, refreshCacheTTL).Err(); err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "caching refresh token"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

// RefreshToken rotates a token pair. The presented refresh token must match
// the one cached at sign-in, so a stolen token dies as soon as its owner
// refreshes.
func (uc Controller) RefreshToken(c *web.Context) error {
	var data user.RefreshTokenRequest

	if err := c.BindFunc(&data, "AccessToken", "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	_, refreshClaims, err := commands.VerifyTokens(data.AccessToken, data.RefreshToken, uc.privateKeyPath)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	cached, err := uc.cache.Get(c.Ctx, refreshKey(refreshClaims.UserId)).Result()
	if err != nil || cached != data.RefreshToken {
		return c.RespondError(web.NewRequestError(errors.New("refresh token revoked"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(commands.TokenClaims{
		ID:   refreshClaims.UserId,
		Role: refreshClaims.Role,
	}, uc.privateKeyPath)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	if err = uc.cache.Set(c.Ctx, refreshKey(refreshClaims.UserId), refreshToken, refreshCacheTTL).Err(); err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "caching refresh token"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}
