package user

import (
	"context"
	"database/sql"
	"net/http"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/entity"
	"hrm/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByEmail looks up the account used for sign-in. A missing row maps to
// 401 rather than 404 so the response never reveals which emails exist.
func (r Repository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).Where("email = ? AND deleted_at IS NULL", email).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, web.NewRequestError(errors.New("invalid email or password"), http.StatusUnauthorized)
	}
	if err != nil {
		return entity.User{}, web.NewRequestError(errors.Wrap(err, "selecting user"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, web.NewRequestError(errors.New("user not found"), http.StatusNotFound)
	}
	if err != nil {
		return entity.User{}, web.NewRequestError(errors.Wrap(err, "selecting user"), http.StatusInternalServerError)
	}

	return detail, nil
}
