package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/entity"
	"hrm/backend/internal/pkg/repository/postgresql"
	"hrm/backend/internal/repository/postgres"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// applyAction is the attendance state transition. existing is nil when no
// record exists for the day yet; the returned bool reports whether a new row
// must be created.
//
// A check-out with no prior check-in creates an "Absent" record. That matches
// the observed wire behavior and is kept for compatibility.
func applyAction(existing *entity.Attendance, action string, now time.Time) (entity.Attendance, bool, error) {
	if action != ActionCheckIn && action != ActionCheckOut {
		return entity.Attendance{}, false, web.NewRequestError(
			errors.Errorf("invalid action %q, expected %s or %s", action, ActionCheckIn, ActionCheckOut),
			http.StatusBadRequest,
		)
	}

	if existing == nil {
		day := truncateToDay(now)
		record := entity.Attendance{WorkDay: &day}

		if action == ActionCheckIn {
			record.CheckIn = &now
			record.Status = ptr(entity.AttendanceStatusPresent)
		} else {
			record.CheckOut = &now
			record.Status = ptr(entity.AttendanceStatusAbsent)
		}

		return record, true, nil
	}

	record := *existing
	if action == ActionCheckIn {
		// Check-in always forces Present, whatever the record said before.
		record.CheckIn = &now
		record.Status = ptr(entity.AttendanceStatusPresent)
	} else {
		// Check-out leaves the status as stored.
		record.CheckOut = &now
	}

	return record, false, nil
}

// RecordAction performs the caller's daily check-in or check-out, creating or
// updating the single record for (employee, today).
func (r Repository) RecordAction(ctx context.Context, request ActionRequest) (entity.Attendance, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Attendance{}, err
	}

	if err = r.ValidateStruct(&request, "Action"); err != nil {
		return entity.Attendance{}, err
	}

	employee, err := r.employeeByUserID(ctx, claims.UserId)
	if err != nil {
		return entity.Attendance{}, err
	}

	now := time.Now()
	today := truncateToDay(now)

	var existing entity.Attendance
	var found = true
	err = r.NewSelect().Model(&existing).
		Where("employee_id = ? AND work_day = ? AND deleted_at IS NULL", employee.ID, today).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		found = false
	} else if err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}

	var prior *entity.Attendance
	if found {
		prior = &existing
	}

	record, created, err := applyAction(prior, *request.Action, now)
	if err != nil {
		return entity.Attendance{}, err
	}

	if created {
		record.EmployeeID = &employee.ID
		record.CreatedAt = now
		record.CreatedBy = &claims.UserId

		if _, err = r.NewInsert().Model(&record).Returning("id").Exec(ctx, &record.ID); err != nil {
			return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "creating attendance"), http.StatusInternalServerError)
		}

		return record, nil
	}

	q := r.NewUpdate().Table("attendance").Where("deleted_at IS NULL AND id = ?", record.ID)
	if *request.Action == ActionCheckIn {
		q.Set("check_in = ?", record.CheckIn)
		q.Set("status = ?", record.Status)
	} else {
		q.Set("check_out = ?", record.CheckOut)
	}
	q.Set("updated_at = ?", now)
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "updating attendance"), http.StatusInternalServerError)
	}

	return record, nil
}

// UpsertAdmin creates or replaces the record for (employee_id, date). On
// conflict only the supplied fields overwrite what is stored. No ownership or
// state restriction applies.
func (r Repository) UpsertAdmin(ctx context.Context, request UpsertRequest) (entity.Attendance, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Attendance{}, err
	}

	if err = r.ValidateStruct(&request, "EmployeeID", "Date"); err != nil {
		return entity.Attendance{}, err
	}

	parsed, err := date.ParseDate(*request.Date)
	if err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "parsing date"), http.StatusBadRequest)
	}
	day := truncateToDay(parsed.Time)

	checkIn, err := parseTimestamp(request.CheckIn)
	if err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "parsing check_in"), http.StatusBadRequest)
	}
	checkOut, err := parseTimestamp(request.CheckOut)
	if err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "parsing check_out"), http.StatusBadRequest)
	}

	row := entity.Attendance{
		EmployeeID: request.EmployeeID,
		WorkDay:    &day,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     request.Status,
		Notes:      request.Notes,
	}
	row.CreatedAt = time.Now()
	row.CreatedBy = &claims.UserId

	q := r.NewInsert().Model(&row).On("CONFLICT (employee_id, work_day) WHERE deleted_at IS NULL DO UPDATE")
	if request.CheckIn != nil {
		q.Set("check_in = EXCLUDED.check_in")
	}
	if request.CheckOut != nil {
		q.Set("check_out = EXCLUDED.check_out")
	}
	if request.Status != nil {
		q.Set("status = EXCLUDED.status")
	}
	if request.Notes != nil {
		q.Set("notes = EXCLUDED.notes")
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "upserting attendance"), http.StatusInternalServerError)
	}

	var stored entity.Attendance
	err = r.NewSelect().Model(&stored).
		Where("employee_id = ? AND work_day = ? AND deleted_at IS NULL", *request.EmployeeID, day).
		Scan(ctx)
	if err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "selecting upserted attendance"), http.StatusInternalServerError)
	}

	return stored, nil
}

// GetSelfList returns the caller's own records, optionally bounded by
// start_date/end_date, newest first.
func (r Repository) GetSelfList(ctx context.Context, filter SelfFilter) ([]entity.Attendance, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	employee, err := r.employeeByUserID(ctx, claims.UserId)
	if err != nil {
		return nil, err
	}

	var list []entity.Attendance
	q := r.NewSelect().Model(&list).
		Where("employee_id = ? AND deleted_at IS NULL", employee.ID).
		Order("work_day DESC")

	if filter.StartDate != nil {
		parsed, err := date.ParseDate(*filter.StartDate)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "parsing start_date"), http.StatusBadRequest)
		}
		q = q.Where("work_day >= ?", truncateToDay(parsed.Time))
	}
	if filter.EndDate != nil {
		parsed, err := date.ParseDate(*filter.EndDate)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "parsing end_date"), http.StatusBadRequest)
		}
		q = q.Where("work_day <= ?", truncateToDay(parsed.Time))
	}

	if err = q.Scan(ctx); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}

	return list, nil
}

// GetList is the admin view: all records with employee names, optionally
// filtered by date and employee.
func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE a.deleted_at IS NULL`

	if filter.EmployeeID != nil {
		whereQuery += fmt.Sprintf(" AND a.employee_id = %d", *filter.EmployeeID)
	}
	if filter.Date != nil {
		parsed, err := date.ParseDate(*filter.Date)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "parsing date"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(" AND a.work_day = '%s'", parsed.Time.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY a.work_day DESC, a.id DESC"

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
			a.id,
			a.employee_id,
			e.first_name,
			e.last_name,
			a.work_day,
			a.check_in,
			a.check_out,
			a.status,
			a.notes
		FROM attendance a
		LEFT JOIN employees e ON a.employee_id = e.id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var workDayString string
		var checkIn, checkOut sql.NullTime

		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.FirstName,
			&detail.LastName,
			&workDayString,
			&checkIn,
			&checkOut,
			&detail.Status,
			&detail.Notes); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusInternalServerError)
		}

		workDay, err := date.ParseDate(workDayString)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting work_day to date.Date"), http.StatusInternalServerError)
		}
		detail.WorkDay = &workDay

		if checkIn.Valid {
			detail.CheckIn = &checkIn.Time
		}
		if checkOut.Valid {
			detail.CheckOut = &checkOut.Time
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(a.id)
		FROM attendance a
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// MonthlySummary aggregates per-employee present/absent day counts for the
// given month. Feeds the PDF report.
func (r Repository) MonthlySummary(ctx context.Context, month time.Time) ([]ReportRow, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT
			e.id,
			e.first_name,
			e.last_name,
			COUNT(a.id) FILTER (WHERE a.status = 'Present') AS present_days,
			COUNT(a.id) FILTER (WHERE a.status = 'Absent') AS absent_days
		FROM employees e
		LEFT JOIN attendance a
			ON a.employee_id = e.id
			AND a.deleted_at IS NULL
			AND a.work_day >= $1 AND a.work_day < $2
		WHERE e.deleted_at IS NULL
		GROUP BY e.id, e.first_name, e.last_name
		ORDER BY e.last_name, e.first_name
	`

	rows, err := r.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting monthly summary"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []ReportRow
	for rows.Next() {
		var row ReportRow
		if err = rows.Scan(&row.EmployeeID, &row.FirstName, &row.LastName, &row.PresentDays, &row.AbsentDays); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning monthly summary"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}

func (r Repository) employeeByUserID(ctx context.Context, userID int) (entity.Employee, error) {
	var employee entity.Employee

	err := r.NewSelect().Model(&employee).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Employee{}, web.NewRequestError(errors.New("employee not found"), http.StatusNotFound)
	}
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "selecting employee"), http.StatusInternalServerError)
	}

	return employee, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseTimestamp(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func ptr(s string) *string {
	return &s
}
