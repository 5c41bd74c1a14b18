package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Employee struct {
	bun.BaseModel `bun:"table:employees"`

	BasicEntity
	UserID       *int       `json:"user_id"       bun:"user_id"`
	FirstName    *string    `json:"first_name"    bun:"first_name"`
	LastName     *string    `json:"last_name"     bun:"last_name"`
	Position     *string    `json:"position"      bun:"position"`
	DepartmentID *int       `json:"department_id" bun:"department_id"`
	LocationID   *int       `json:"location_id"   bun:"location_id"`
	ManagerID    *int       `json:"manager_id"    bun:"manager_id"`
	HireDate     *time.Time `json:"hire_date"     bun:"hire_date"`
	Salary       *float64   `json:"salary"        bun:"salary"`
	IsActive     *bool      `json:"is_active"     bun:"is_active"`
}
