package leave

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
)

type Filter struct {
	Limit      *int
	Offset     *int
	Page       *int
	Status     *string
	EmployeeID *int
}

type SelfFilter struct {
	Status *string
}

// CreateRequest is the employee-facing request body. The legacy wire shape
// used "type" for the leave type; it is accepted as an alias and normalized
// here at the boundary.
type CreateRequest struct {
	StartDate  *string `json:"start_date" form:"start_date"`
	EndDate    *string `json:"end_date" form:"end_date"`
	Reason     *string `json:"reason" form:"reason"`
	LeaveType  *string `json:"leave_type" form:"leave_type"`
	LegacyType *string `json:"type" form:"type"`
}

type UpdateRequest struct {
	ID         int     `json:"id" form:"id"`
	StartDate  *string `json:"start_date" form:"start_date"`
	EndDate    *string `json:"end_date" form:"end_date"`
	Reason     *string `json:"reason" form:"reason"`
	LeaveType  *string `json:"leave_type" form:"leave_type"`
	LegacyType *string `json:"type" form:"type"`
}

type DecideRequest struct {
	ID         int     `json:"id" form:"id"`
	Status     *string `json:"status" form:"status"`
	ApprovedBy *int    `json:"approved_by" form:"approved_by"`
}

type AdminCreateRequest struct {
	EmployeeID *int    `json:"employee_id" form:"employee_id"`
	StartDate  *string `json:"start_date" form:"start_date"`
	EndDate    *string `json:"end_date" form:"end_date"`
	LeaveType  *string `json:"leave_type" form:"leave_type"`
	Reason     *string `json:"reason" form:"reason"`
	Status     *string `json:"status" form:"status"`
	ApprovedBy *int    `json:"approved_by" form:"approved_by"`
}

type GetListResponse struct {
	ID         int        `json:"id"`
	EmployeeID *int       `json:"employee_id"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	StartDate  *date.Date `json:"start_date"`
	EndDate    *date.Date `json:"end_date"`
	LeaveType  *string    `json:"leave_type"`
	Reason     *string    `json:"reason"`
	Status     *string    `json:"status"`
	ApprovedBy *int       `json:"approved_by"`
	ApprovedOn *time.Time `json:"approved_on"`
}
