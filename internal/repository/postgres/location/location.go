package location

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

func (r Repository) GetById(ctx context.Context, id int) (entity.Location, error) {
	var detail entity.Location

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Location{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Location{}, web.NewRequestError(errors.Wrap(err, "selecting location"), http.StatusInternalServerError)
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
		whereQuery += fmt.Sprintf(` AND (name ILIKE '%s' OR city ILIKE '%s')`,
			"%"+search+"%", "%"+search+"%")
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
			address,
			city,
			state,
			country,
			zip_code
		FROM location
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting location"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.Address,
			&detail.City,
			&detail.State,
			&detail.Country,
			&detail.ZipCode); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning location list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(id)
		FROM location
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning location count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Location, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Location{}, err
	}

	if err = r.ValidateStruct(&request, "Name"); err != nil {
		return entity.Location{}, err
	}

	record := entity.Location{
		Name:    request.Name,
		Address: request.Address,
		City:    request.City,
		State:   request.State,
		Country: request.Country,
		ZipCode: request.ZipCode,
	}
	record.CreatedAt = time.Now()
	record.CreatedBy = &claims.UserId

	if _, err = r.NewInsert().Model(&record).Returning("id").Exec(ctx, &record.ID); err != nil {
		return entity.Location{}, web.NewRequestError(errors.Wrap(err, "creating location"), http.StatusInternalServerError)
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

	q := r.NewUpdate().Table("location").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Address != nil {
		q.Set("address = ?", request.Address)
	}
	if request.City != nil {
		q.Set("city = ?", request.City)
	}
	if request.State != nil {
		q.Set("state = ?", request.State)
	}
	if request.Country != nil {
		q.Set("country = ?", request.Country)
	}
	if request.ZipCode != nil {
		q.Set("zip_code = ?", request.ZipCode)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating location"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "location", id)
}
