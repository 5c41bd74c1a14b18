package project

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

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Project, error) {
	var detail entity.Project

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Project{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Project{}, web.NewRequestError(errors.Wrap(err, "selecting project"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE p.deleted_at IS NULL`

	if filter.Status != nil {
		status := strings.Replace(*filter.Status, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND p.status = '%s'`, status)
	}
	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND p.name ILIKE '%s'`, "%"+search+"%")
	}

	orderQuery := "ORDER BY p.start_date DESC NULLS LAST, p.id DESC"

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
			p.id,
			p.name,
			p.description,
			p.start_date,
			p.end_date,
			p.status
		FROM project p
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting projects"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var startDate, endDate sql.NullString

		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.Description,
			&startDate,
			&endDate,
			&detail.Status); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning project list"), http.StatusInternalServerError)
		}

		if detail.StartDate, err = parseNullDate(startDate); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting start_date"), http.StatusInternalServerError)
		}
		if detail.EndDate, err = parseNullDate(endDate); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting end_date"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	for i := range list {
		members, err := r.membersByProject(ctx, list[i].ID)
		if err != nil {
			return nil, 0, err
		}
		list[i].Members = members
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(p.id)
		FROM project p
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning project count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// Create inserts the project together with its member rows; either everything
// lands or nothing does.
func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Project, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Project{}, err
	}

	if err = r.ValidateStruct(&request, "Name"); err != nil {
		return entity.Project{}, err
	}

	startDate, err := parseOptionalDate(request.StartDate)
	if err != nil {
		return entity.Project{}, web.NewRequestError(errors.Wrap(err, "parsing start_date"), http.StatusBadRequest)
	}
	endDate, err := parseOptionalDate(request.EndDate)
	if err != nil {
		return entity.Project{}, web.NewRequestError(errors.Wrap(err, "parsing end_date"), http.StatusBadRequest)
	}

	now := time.Now()

	status := request.Status
	if status == nil {
		notStarted := "Not Started"
		status = &notStarted
	}

	record := entity.Project{
		Name:        request.Name,
		Description: request.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
	}
	record.CreatedAt = now
	record.CreatedBy = &claims.UserId

	members := make([]entity.ProjectMember, 0, len(request.Members))
	for _, m := range request.Members {
		if m.EmployeeID == nil {
			return entity.Project{}, web.NewRequestError(errors.New("member employee_id is required"), http.StatusBadRequest)
		}
		joinDate, err := parseOptionalDate(m.JoinDate)
		if err != nil {
			return entity.Project{}, web.NewRequestError(errors.Wrap(err, "parsing join_date"), http.StatusBadRequest)
		}
		member := entity.ProjectMember{
			EmployeeID: m.EmployeeID,
			Role:       m.Role,
			JoinDate:   joinDate,
		}
		member.CreatedAt = now
		member.CreatedBy = &claims.UserId
		members = append(members, member)
	}

	err = r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&record).Returning("id").Exec(ctx, &record.ID); err != nil {
			return errors.Wrap(err, "creating project")
		}

		for i := range members {
			members[i].ProjectID = &record.ID
			if _, err := tx.NewInsert().Model(&members[i]).Exec(ctx); err != nil {
				return errors.Wrap(err, "creating project member")
			}
		}

		return nil
	})
	if err != nil {
		return entity.Project{}, web.NewRequestError(err, http.StatusInternalServerError)
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

	q := r.NewUpdate().Table("project").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Description != nil {
		q.Set("description = ?", request.Description)
	}
	if request.StartDate != nil {
		startDate, err := parseOptionalDate(request.StartDate)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "parsing start_date"), http.StatusBadRequest)
		}
		q.Set("start_date = ?", startDate)
	}
	if request.EndDate != nil {
		endDate, err := parseOptionalDate(request.EndDate)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "parsing end_date"), http.StatusBadRequest)
		}
		q.Set("end_date = ?", endDate)
	}
	if request.Status != nil {
		q.Set("status = ?", request.Status)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating project"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "project", id)
}

func (r Repository) membersByProject(ctx context.Context, projectID int) ([]MemberResponse, error) {
	query := `
		SELECT
			pm.id,
			pm.employee_id,
			e.first_name || ' ' || e.last_name,
			pm.role,
			pm.join_date
		FROM project_member pm
		LEFT JOIN employees e ON pm.employee_id = e.id
		WHERE pm.deleted_at IS NULL AND pm.project_id = $1
		ORDER BY pm.id
	`

	rows, err := r.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting project members"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var members []MemberResponse

	for rows.Next() {
		var member MemberResponse
		var joinDate sql.NullString

		if err = rows.Scan(
			&member.ID,
			&member.EmployeeID,
			&member.Name,
			&member.Role,
			&joinDate); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning project member"), http.StatusInternalServerError)
		}

		if member.JoinDate, err = parseNullDate(joinDate); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting join_date"), http.StatusInternalServerError)
		}

		members = append(members, member)
	}

	return members, nil
}

func parseNullDate(value sql.NullString) (*date.Date, error) {
	if !value.Valid {
		return nil, nil
	}
	parsed, err := date.ParseDate(value.String)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := date.ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &parsed.Time, nil
}
