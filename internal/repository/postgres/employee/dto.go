package employee

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type CreateRequest struct {
	Email        *string  `json:"email" form:"email"`
	Password     *string  `json:"password" form:"password"`
	IsAdmin      bool     `json:"is_admin" form:"is_admin"`
	FirstName    *string  `json:"first_name" form:"first_name"`
	LastName     *string  `json:"last_name" form:"last_name"`
	Position     *string  `json:"position" form:"position"`
	DepartmentID *int     `json:"department_id" form:"department_id"`
	LocationID   *int     `json:"location_id" form:"location_id"`
	ManagerID    *int     `json:"manager_id" form:"manager_id"`
	HireDate     *string  `json:"hire_date" form:"hire_date"`
	Salary       *float64 `json:"salary" form:"salary"`
	IsActive     *bool    `json:"is_active" form:"is_active"`
}

type UpdateRequest struct {
	ID           int      `json:"id" form:"id"`
	FirstName    *string  `json:"first_name" form:"first_name"`
	LastName     *string  `json:"last_name" form:"last_name"`
	Position     *string  `json:"position" form:"position"`
	DepartmentID *int     `json:"department_id" form:"department_id"`
	LocationID   *int     `json:"location_id" form:"location_id"`
	ManagerID    *int     `json:"manager_id" form:"manager_id"`
	Salary       *float64 `json:"salary" form:"salary"`
	IsActive     *bool    `json:"is_active" form:"is_active"`
}

type GetListResponse struct {
	ID           int        `json:"id"`
	Email        *string    `json:"email"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	Position     *string    `json:"position"`
	DepartmentID *int       `json:"department_id"`
	Department   *string    `json:"department"`
	LocationID   *int       `json:"location_id"`
	Location     *string    `json:"location"`
	ManagerID    *int       `json:"manager_id"`
	Manager      *string    `json:"manager"`
	HireDate     *date.Date `json:"hire_date"`
	Salary       *float64   `json:"salary"`
	IsActive     *bool      `json:"is_active"`
}

type GetProfileResponse struct {
	ID         int        `json:"id"`
	Email      *string    `json:"email"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Position   *string    `json:"position"`
	Department *string    `json:"department"`
	Location   *string    `json:"location"`
	Manager    *string    `json:"manager"`
	HireDate   *date.Date `json:"hire_date"`
	IsActive   *bool      `json:"is_active"`
}

type CreateResponse struct {
	ID           int        `json:"id"`
	UserID       int        `json:"user_id"`
	Email        *string    `json:"email"`
	Role         string     `json:"role"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	Position     *string    `json:"position"`
	DepartmentID *int       `json:"department_id"`
	LocationID   *int       `json:"location_id"`
	ManagerID    *int       `json:"manager_id"`
	HireDate     *time.Time `json:"hire_date"`
	Salary       *float64   `json:"salary"`
	IsActive     *bool      `json:"is_active"`
}
