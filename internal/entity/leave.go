package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Leave status values. Once a request leaves Pending it is immutable to its
// owner; only an admin decision moves it (and may move it again).
const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// Leave type values.
const (
	LeaveTypeVacation = "VACATION"
	LeaveTypeSick     = "SICK"
	LeaveTypePersonal = "PERSONAL"
	LeaveTypeOther    = "OTHER"
)

type Leave struct {
	bun.BaseModel `bun:"table:leaves"`

	BasicEntity
	EmployeeID *int       `json:"employee_id" bun:"employee_id"`
	StartDate  *time.Time `json:"start_date"  bun:"start_date"`
	EndDate    *time.Time `json:"end_date"    bun:"end_date"`
	LeaveType  *string    `json:"leave_type"  bun:"leave_type"`
	Reason     *string    `json:"reason"      bun:"reason"`
	Status     *string    `json:"status"      bun:"status"`
	ApprovedBy *int       `json:"approved_by" bun:"approved_by"`
	ApprovedOn *time.Time `json:"approved_on" bun:"approved_on"`
}
