package department

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/entity"
	"hrm/backend/internal/pkg/repository/postgresql"
	"hrm/backend/internal/repository/postgres"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Department, error) {
	var detail entity.Department

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Department{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Department{}, web.NewRequestError(errors.Wrap(err, "selecting department"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND name ILIKE '%s'`, "%"+search+"%")
	}

	orderQuery := "ORDER BY name"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery = fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery = fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			id,
			name,
			description
		FROM department
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting department"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.Description); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning department list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(id)
		FROM department
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning department count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Department, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Department{}, err
	}

	if err = r.ValidateStruct(&request, "Name"); err != nil {
		return entity.Department{}, err
	}

	if err = r.checkNameFree(ctx, *request.Name); err != nil {
		return entity.Department{}, err
	}

	record := entity.Department{
		Name:        request.Name,
		Description: request.Description,
	}
	record.CreatedAt = time.Now()
	record.CreatedBy = &claims.UserId

	if _, err = r.NewInsert().Model(&record).Returning("id").Exec(ctx, &record.ID); err != nil {
		return entity.Department{}, web.NewRequestError(errors.Wrap(err, "creating department"), http.StatusInternalServerError)
	}

	return record, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err = r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	if _, err = r.GetById(ctx, request.ID); err != nil {
		return err
	}

	q := r.NewUpdate().Table("department").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		if err = r.checkNameFree(ctx, *request.Name); err != nil {
			return err
		}
		q.Set("name = ?", request.Name)
	}
	if request.Description != nil {
		q.Set("description = ?", request.Description)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating department"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "department", id)
}

// checkNameFree rejects a name already used by a live department.
func (r Repository) checkNameFree(ctx context.Context, name string) error {
	taken := false
	err := r.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM department WHERE name = $1 AND deleted_at IS NULL)`, name).Scan(&taken)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "department name check"), http.StatusInternalServerError)
	}
	if taken {
		return web.NewRequestError(errors.New("department name is used"), http.StatusBadRequest)
	}
	return nil
}
