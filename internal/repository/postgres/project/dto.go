package project

import "github.com/Azure/go-autorest/autorest/date"

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Status *string
	Search *string
}

type MemberRequest struct {
	EmployeeID *int    `json:"employee_id" form:"employee_id"`
	Role       *string `json:"role" form:"role"`
	JoinDate   *string `json:"join_date" form:"join_date"`
}

type CreateRequest struct {
	Name        *string         `json:"name" form:"name"`
	Description *string         `json:"description" form:"description"`
	StartDate   *string         `json:"start_date" form:"start_date"`
	EndDate     *string         `json:"end_date" form:"end_date"`
	Status      *string         `json:"status" form:"status"`
	Members     []MemberRequest `json:"members" form:"members"`
}

type UpdateRequest struct {
	ID          int     `json:"id" form:"id"`
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	StartDate   *string `json:"start_date" form:"start_date"`
	EndDate     *string `json:"end_date" form:"end_date"`
	Status      *string `json:"status" form:"status"`
}

type MemberResponse struct {
	ID         int        `json:"id"`
	EmployeeID *int       `json:"employee_id"`
	Name       *string    `json:"name"`
	Role       *string    `json:"role"`
	JoinDate   *date.Date `json:"join_date"`
}

type GetListResponse struct {
	ID          int              `json:"id"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	StartDate   *date.Date       `json:"start_date"`
	EndDate     *date.Date       `json:"end_date"`
	Status      *string          `json:"status"`
	Members     []MemberResponse `json:"members"`
}
