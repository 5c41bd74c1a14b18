package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Attendance status values observed on the wire.
const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusAbsent  = "Absent"
)

// Attendance is the unique per-employee-per-day record. work_day is
// day-granular; uniqueness of (employee_id, work_day) is enforced by the
// database.
type Attendance struct {
	bun.BaseModel `bun:"table:attendance"`

	BasicEntity
	EmployeeID *int       `json:"employee_id" bun:"employee_id"`
	WorkDay    *time.Time `json:"work_day"    bun:"work_day"`
	CheckIn    *time.Time `json:"check_in"    bun:"check_in"`
	CheckOut   *time.Time `json:"check_out"   bun:"check_out"`
	Status     *string    `json:"status"      bun:"status"`
	Notes      *string    `json:"notes"       bun:"notes"`
}
