package leave

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
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// normalizeStatus maps any casing of a known status to its canonical
// spelling. The legacy employee endpoint wrote "PENDING".
func normalizeStatus(status string) (string, error) {
	switch strings.ToLower(status) {
	case "pending":
		return entity.LeaveStatusPending, nil
	case "approved":
		return entity.LeaveStatusApproved, nil
	case "rejected":
		return entity.LeaveStatusRejected, nil
	}
	return "", errors.Errorf("unknown leave status %q", status)
}

func normalizeType(leaveType string) (string, error) {
	switch strings.ToUpper(leaveType) {
	case entity.LeaveTypeVacation, entity.LeaveTypeSick, entity.LeaveTypePersonal, entity.LeaveTypeOther:
		return strings.ToUpper(leaveType), nil
	}
	return "", errors.Errorf("unknown leave type %q", leaveType)
}

// ownerGuard enforces the owner-side mutation rules: the requester must own
// the record (else Forbidden) and the record must still be Pending (else the
// request is invalid in its current state). Ownership is checked first.
func ownerGuard(leave entity.Leave, employeeID int) error {
	if leave.EmployeeID == nil || *leave.EmployeeID != employeeID {
		return web.NewRequestError(errors.New("not allowed to modify another employee's leave request"), http.StatusForbidden)
	}
	if leave.Status == nil || *leave.Status != entity.LeaveStatusPending {
		return web.NewRequestError(errors.New("leave request already approved or rejected"), http.StatusBadRequest)
	}
	return nil
}

// approvalStamp returns the approved_on value for a decision: now iff the new
// status is Approved, nil otherwise.
func approvalStamp(status string, now time.Time) *time.Time {
	if status == entity.LeaveStatusApproved {
		return &now
	}
	return nil
}

// Request creates a Pending leave request for the caller. All four fields are
// required; nothing is persisted otherwise.
func (r Repository) Request(ctx context.Context, request CreateRequest) (entity.Leave, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Leave{}, err
	}

	if request.LeaveType == nil {
		request.LeaveType = request.LegacyType
	}
	if err = r.ValidateStruct(&request, "StartDate", "EndDate", "Reason", "LeaveType"); err != nil {
		return entity.Leave{}, err
	}

	employee, err := r.employeeByUserID(ctx, claims.UserId)
	if err != nil {
		return entity.Leave{}, err
	}

	startDate, endDate, err := parseRange(*request.StartDate, *request.EndDate)
	if err != nil {
		return entity.Leave{}, err
	}

	leaveType, err := normalizeType(*request.LeaveType)
	if err != nil {
		return entity.Leave{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	status := entity.LeaveStatusPending
	record := entity.Leave{
		EmployeeID: &employee.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		LeaveType:  &leaveType,
		Reason:     request.Reason,
		Status:     &status,
	}
	record.CreatedAt = time.Now()
	record.CreatedBy = &claims.UserId

	if _, err = r.NewInsert().Model(&record).Returning("id").Exec(ctx, &record.ID); err != nil {
		return entity.Leave{}, web.NewRequestError(errors.Wrap(err, "creating leave request"), http.StatusInternalServerError)
	}

	return record, nil
}

// OwnerUpdate applies the supplied fields to the caller's own Pending
// request.
func (r Repository) OwnerUpdate(ctx context.Context, request UpdateRequest) (entity.Leave, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Leave{}, err
	}

	if err = r.ValidateStruct(&request, "ID"); err != nil {
		return entity.Leave{}, err
	}

	employee, err := r.employeeByUserID(ctx, claims.UserId)
	if err != nil {
		return entity.Leave{}, err
	}

	record, err := r.getByID(ctx, request.ID)
	if err != nil {
		return entity.Leave{}, err
	}

	if err = ownerGuard(record, employee.ID); err != nil {
		return entity.Leave{}, err
	}

	if request.LeaveType == nil {
		request.LeaveType = request.LegacyType
	}

	now := time.Now()
	q := r.NewUpdate().Table("leaves").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.StartDate != nil {
		parsed, err := date.ParseDate(*request.StartDate)
		if err != nil {
			return entity.Leave{}, web.NewRequestError(errors.Wrap(err, "parsing start_date"), http.StatusBadRequest)
		}
		startDate := parsed.Time
		record.StartDate = &startDate
		q.Set("start_date = ?", startDate)
	}
	if request.EndDate != nil {
		parsed, err := date.ParseDate(*request.EndDate)
		if err != nil {
			return entity.Leave{}, web.NewRequestError(errors.Wrap(err, "parsing end_date"), http.StatusBadRequest)
		}
		endDate := parsed.Time
		record.EndDate = &endDate
		q.Set("end_date = ?", endDate)
	}
	if request.Reason != nil {
		record.Reason = request.Reason
		q.Set("reason = ?", request.Reason)
	}
	if request.LeaveType != nil {
		leaveType, err := normalizeType(*request.LeaveType)
		if err != nil {
			return entity.Leave{}, web.NewRequestError(err, http.StatusBadRequest)
		}
		record.LeaveType = &leaveType
		q.Set("leave_type = ?", leaveType)
	}
	q.Set("updated_at = ?", now)
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return entity.Leave{}, web.NewRequestError(errors.Wrap(err, "updating leave request"), http.StatusInternalServerError)
	}

	return record, nil
}

// OwnerCancel deletes the caller's own Pending request.
func (r Repository) OwnerCancel(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	employee, err := r.employeeByUserID(ctx, claims.UserId)
	if err != nil {
		return err
	}

	record, err := r.getByID(ctx, id)
	if err != nil {
		return err
	}

	if err = ownerGuard(record, employee.ID); err != nil {
		return err
	}

	return r.DeleteRow(ctx, "leaves", id)
}

// AdminDecide moves a request to the given status. Any admin may decide any
// request, and may re-decide one that was already decided; approved_on is
// recomputed on every decision.
func (r Repository) AdminDecide(ctx context.Context, request DecideRequest) (entity.Leave, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Leave{}, err
	}

	if err = r.ValidateStruct(&request, "ID", "Status"); err != nil {
		return entity.Leave{}, err
	}

	status, err := normalizeStatus(*request.Status)
	if err != nil {
		return entity.Leave{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	record, err := r.getByID(ctx, request.ID)
	if err != nil {
		return entity.Leave{}, err
	}

	now := time.Now()
	approvedOn := approvalStamp(status, now)

	approvedBy := request.ApprovedBy
	if approvedBy == nil {
		approvedBy = &claims.UserId
	}

	q := r.NewUpdate().Table("leaves").Where("deleted_at IS NULL AND id = ?", request.ID)
	q.Set("status = ?", status)
	q.Set("approved_by = ?", approvedBy)
	q.Set("approved_on = ?", approvedOn)
	q.Set("updated_at = ?", now)
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return entity.Leave{}, web.NewRequestError(errors.Wrap(err, "updating leave status"), http.StatusInternalServerError)
	}

	record.Status = &status
	record.ApprovedBy = approvedBy
	record.ApprovedOn = approvedOn

	return record, nil
}

// AdminCreate creates a request on behalf of an employee, in any status.
func (r Repository) AdminCreate(ctx context.Context, request AdminCreateRequest) (entity.Leave, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Leave{}, err
	}

	if err = r.ValidateStruct(&request, "EmployeeID", "StartDate", "EndDate", "LeaveType"); err != nil {
		return entity.Leave{}, err
	}

	startDate, endDate, err := parseRange(*request.StartDate, *request.EndDate)
	if err != nil {
		return entity.Leave{}, err
	}

	leaveType, err := normalizeType(*request.LeaveType)
	if err != nil {
		return entity.Leave{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	status := entity.LeaveStatusPending
	if request.Status != nil {
		if status, err = normalizeStatus(*request.Status); err != nil {
			return entity.Leave{}, web.NewRequestError(err, http.StatusBadRequest)
		}
	}

	now := time.Now()
	record := entity.Leave{
		EmployeeID: request.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		LeaveType:  &leaveType,
		Reason:     request.Reason,
		Status:     &status,
		ApprovedBy: request.ApprovedBy,
		ApprovedOn: approvalStamp(status, now),
	}
	record.CreatedAt = now
	record.CreatedBy = &claims.UserId

	if _, err = r.NewInsert().Model(&record).Returning("id").Exec(ctx, &record.ID); err != nil {
		return entity.Leave{}, web.NewRequestError(errors.Wrap(err, "creating leave request"), http.StatusInternalServerError)
	}

	return record, nil
}

// GetSelfList returns the caller's own requests, optionally filtered by
// status, newest start date first.
func (r Repository) GetSelfList(ctx context.Context, filter SelfFilter) ([]entity.Leave, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	employee, err := r.employeeByUserID(ctx, claims.UserId)
	if err != nil {
		return nil, err
	}

	var list []entity.Leave
	q := r.NewSelect().Model(&list).
		Where("employee_id = ? AND deleted_at IS NULL", employee.ID).
		Order("start_date DESC")

	if filter.Status != nil {
		status, err := normalizeStatus(*filter.Status)
		if err != nil {
			return nil, web.NewRequestError(err, http.StatusBadRequest)
		}
		q = q.Where("status = ?", status)
	}

	if err = q.Scan(ctx); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting leave requests"), http.StatusInternalServerError)
	}

	return list, nil
}

// GetList is the admin view: all requests with employee names, optionally
// filtered by status and employee.
func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE l.deleted_at IS NULL`

	if filter.Status != nil {
		status, err := normalizeStatus(*filter.Status)
		if err != nil {
			return nil, 0, web.NewRequestError(err, http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(" AND l.status = '%s'", status)
	}
	if filter.EmployeeID != nil {
		whereQuery += fmt.Sprintf(" AND l.employee_id = %d", *filter.EmployeeID)
	}

	orderQuery := "ORDER BY l.start_date DESC, l.id DESC"

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
			l.id,
			l.employee_id,
			e.first_name,
			e.last_name,
			l.start_date,
			l.end_date,
			l.leave_type,
			l.reason,
			l.status,
			l.approved_by,
			l.approved_on
		FROM leaves l
		LEFT JOIN employees e ON l.employee_id = e.id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting leave requests"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var startDayString, endDayString string
		var approvedOn sql.NullTime

		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.FirstName,
			&detail.LastName,
			&startDayString,
			&endDayString,
			&detail.LeaveType,
			&detail.Reason,
			&detail.Status,
			&detail.ApprovedBy,
			&approvedOn); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning leave list"), http.StatusInternalServerError)
		}

		startDate, err := date.ParseDate(startDayString)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting start_date"), http.StatusInternalServerError)
		}
		detail.StartDate = &startDate

		endDate, err := date.ParseDate(endDayString)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting end_date"), http.StatusInternalServerError)
		}
		detail.EndDate = &endDate

		if approvedOn.Valid {
			detail.ApprovedOn = &approvedOn.Time
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(l.id)
		FROM leaves l
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning leave count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) getByID(ctx context.Context, id int) (entity.Leave, error) {
	var record entity.Leave

	err := r.NewSelect().Model(&record).
		Where("id = ? AND deleted_at IS NULL", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Leave{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Leave{}, web.NewRequestError(errors.Wrap(err, "selecting leave request"), http.StatusInternalServerError)
	}

	return record, nil
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

func parseRange(start, end string) (*time.Time, *time.Time, error) {
	parsedStart, err := date.ParseDate(start)
	if err != nil {
		return nil, nil, web.NewRequestError(errors.Wrap(err, "parsing start_date"), http.StatusBadRequest)
	}
	parsedEnd, err := date.ParseDate(end)
	if err != nil {
		return nil, nil, web.NewRequestError(errors.Wrap(err, "parsing end_date"), http.StatusBadRequest)
	}

	startDate := parsedStart.Time
	endDate := parsedEnd.Time
	return &startDate, &endDate, nil
}
