package attendance

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
)

// Check-in/out action values on the wire.
const (
	ActionCheckIn  = "checkIn"
	ActionCheckOut = "checkOut"
)

type Filter struct {
	Limit      *int
	Offset     *int
	Page       *int
	EmployeeID *int
	Date       *string
}

type SelfFilter struct {
	StartDate *string
	EndDate   *string
}

type ActionRequest struct {
	Action *string `json:"action" form:"action"`
}

type UpsertRequest struct {
	EmployeeID *int    `json:"employee_id" form:"employee_id"`
	Date       *string `json:"date" form:"date"`
	CheckIn    *string `json:"check_in" form:"check_in"`
	CheckOut   *string `json:"check_out" form:"check_out"`
	Status     *string `json:"status" form:"status"`
	Notes      *string `json:"notes" form:"notes"`
}

type GetListResponse struct {
	ID         int        `json:"id"`
	EmployeeID *int       `json:"employee_id"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	WorkDay    *date.Date `json:"work_day"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	Status     *string    `json:"status"`
	Notes      *string    `json:"notes"`
}

type ReportRow struct {
	EmployeeID  int     `json:"employee_id"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PresentDays int     `json:"present_days"`
	AbsentDays  int     `json:"absent_days"`
}
