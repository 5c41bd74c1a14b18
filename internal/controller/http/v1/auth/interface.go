package auth

import (
	"context"

	"hrm/backend/internal/entity"
)

type User interface {
	GetByEmail(ctx context.Context, email string) (entity.User, error)
}
