package employee

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"
	"hrm/backend/internal/entity"
	"hrm/backend/internal/pkg/repository/postgresql"
	"hrm/backend/internal/repository/postgres"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Employee, error) {
	var detail entity.Employee

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Employee{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "selecting employee"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE e.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (e.first_name ILIKE '%s' OR e.last_name ILIKE '%s')`,
			"%"+search+"%", "%"+search+"%")
	}

	orderQuery := "ORDER BY e.last_name, e.first_name"

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
			e.id,
			u.email,
			e.first_name,
			e.last_name,
			e.position,
			e.department_id,
			d.name,
			e.location_id,
			l.name,
			e.manager_id,
			m.first_name || ' ' || m.last_name,
			e.hire_date,
			e.salary,
			e.is_active
		FROM employees e
		LEFT JOIN users u ON e.user_id = u.id
		LEFT JOIN department d ON e.department_id = d.id
		LEFT JOIN location l ON e.location_id = l.id
		LEFT JOIN employees m ON e.manager_id = m.id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting employees"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var hireDate sql.NullString

		if err = rows.Scan(
			&detail.ID,
			&detail.Email,
			&detail.FirstName,
			&detail.LastName,
			&detail.Position,
			&detail.DepartmentID,
			&detail.Department,
			&detail.LocationID,
			&detail.Location,
			&detail.ManagerID,
			&detail.Manager,
			&hireDate,
			&detail.Salary,
			&detail.IsActive); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning employee list"), http.StatusInternalServerError)
		}

		if hireDate.Valid {
			parsed, err := date.ParseDate(hireDate.String)
			if err != nil {
				return nil, 0, web.NewRequestError(errors.Wrap(err, "converting hire_date"), http.StatusInternalServerError)
			}
			detail.HireDate = &parsed
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(e.id)
		FROM employees e
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning employee count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// Create makes the user account and the employee profile in one transaction;
// a failure on either side leaves nothing behind.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err = r.ValidateStruct(&request, "Email", "Password", "FirstName", "LastName", "HireDate"); err != nil {
		return CreateResponse{}, err
	}

	parsed, err := date.ParseDate(*request.HireDate)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "parsing hire_date"), http.StatusBadRequest)
	}
	hireDate := parsed.Time

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}

	role := auth.RoleEmployee
	if request.IsAdmin {
		role = auth.RoleAdmin
	}

	active := true
	if request.IsActive != nil {
		active = *request.IsActive
	}

	now := time.Now()
	password := string(hash)

	user := entity.User{
		Email:    request.Email,
		Password: &password,
		Role:     &role,
	}
	user.CreatedAt = now
	user.CreatedBy = &claims.UserId

	employee := entity.Employee{
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Position:     request.Position,
		DepartmentID: request.DepartmentID,
		LocationID:   request.LocationID,
		ManagerID:    request.ManagerID,
		HireDate:     &hireDate,
		Salary:       request.Salary,
		IsActive:     &active,
	}
	employee.CreatedAt = now
	employee.CreatedBy = &claims.UserId

	err = r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&user).Returning("id").Exec(ctx, &user.ID); err != nil {
			return errors.Wrap(err, "creating user")
		}

		employee.UserID = &user.ID
		if _, err := tx.NewInsert().Model(&employee).Returning("id").Exec(ctx, &employee.ID); err != nil {
			return errors.Wrap(err, "creating employee")
		}

		return nil
	})
	if err != nil {
		return CreateResponse{}, web.NewRequestError(err, http.StatusInternalServerError)
	}

	return CreateResponse{
		ID:           employee.ID,
		UserID:       user.ID,
		Email:        request.Email,
		Role:         role,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Position:     request.Position,
		DepartmentID: request.DepartmentID,
		LocationID:   request.LocationID,
		ManagerID:    request.ManagerID,
		HireDate:     &hireDate,
		Salary:       request.Salary,
		IsActive:     &active,
	}, nil
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

	q := r.NewUpdate().Table("employees").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.FirstName != nil {
		q.Set("first_name = ?", request.FirstName)
	}
	if request.LastName != nil {
		q.Set("last_name = ?", request.LastName)
	}
	if request.Position != nil {
		q.Set("position = ?", request.Position)
	}
	if request.DepartmentID != nil {
		q.Set("department_id = ?", request.DepartmentID)
	}
	if request.LocationID != nil {
		q.Set("location_id = ?", request.LocationID)
	}
	if request.ManagerID != nil {
		q.Set("manager_id = ?", request.ManagerID)
	}
	if request.Salary != nil {
		q.Set("salary = ?", request.Salary)
	}
	if request.IsActive != nil {
		q.Set("is_active = ?", request.IsActive)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating employee"), http.StatusInternalServerError)
	}

	return nil
}

// GetProfile resolves the caller's own employee profile via their user id.
func (r Repository) GetProfile(ctx context.Context) (GetProfileResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return GetProfileResponse{}, err
	}

	query := `
		SELECT
			e.id,
			u.email,
			e.first_name,
			e.last_name,
			e.position,
			d.name,
			l.name,
			m.first_name || ' ' || m.last_name,
			e.hire_date,
			e.is_active
		FROM employees e
		LEFT JOIN users u ON e.user_id = u.id
		LEFT JOIN department d ON e.department_id = d.id
		LEFT JOIN location l ON e.location_id = l.id
		LEFT JOIN employees m ON e.manager_id = m.id
		WHERE e.deleted_at IS NULL AND e.user_id = $1
	`

	var detail GetProfileResponse
	var hireDate sql.NullString

	err = r.QueryRowContext(ctx, query, claims.UserId).Scan(
		&detail.ID,
		&detail.Email,
		&detail.FirstName,
		&detail.LastName,
		&detail.Position,
		&detail.Department,
		&detail.Location,
		&detail.Manager,
		&hireDate,
		&detail.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProfileResponse{}, web.NewRequestError(errors.New("employee not found"), http.StatusNotFound)
	}
	if err != nil {
		return GetProfileResponse{}, web.NewRequestError(errors.Wrap(err, "selecting employee profile"), http.StatusInternalServerError)
	}

	if hireDate.Valid {
		parsed, err := date.ParseDate(hireDate.String)
		if err != nil {
			return GetProfileResponse{}, web.NewRequestError(errors.Wrap(err, "converting hire_date"), http.StatusInternalServerError)
		}
		detail.HireDate = &parsed
	}

	return detail, nil
}
