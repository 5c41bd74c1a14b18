package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Project struct {
	bun.BaseModel `bun:"table:project"`

	BasicEntity
	Name        *string    `json:"name"        bun:"name"`
	Description *string    `json:"description" bun:"description"`
	StartDate   *time.Time `json:"start_date"  bun:"start_date"`
	EndDate     *time.Time `json:"end_date"    bun:"end_date"`
	Status      *string    `json:"status"      bun:"status"`
}

type ProjectMember struct {
	bun.BaseModel `bun:"table:project_member"`

	BasicEntity
	ProjectID  *int       `json:"project_id"  bun:"project_id"`
	EmployeeID *int       `json:"employee_id" bun:"employee_id"`
	Role       *string    `json:"role"        bun:"role"`
	JoinDate   *time.Time `json:"join_date"   bun:"join_date"`
}
