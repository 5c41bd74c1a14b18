package employee

import (
	"context"

	"hrm/backend/internal/entity"
	"hrm/backend/internal/repository/postgres/employee"
)

type Employee interface {
	GetById(ctx context.Context, id int) (entity.Employee, error)
	GetList(ctx context.Context, filter employee.Filter) ([]employee.GetListResponse, int, error)
	Create(ctx context.Context, request employee.CreateRequest) (employee.CreateResponse, error)
	UpdateColumns(ctx context.Context, request employee.UpdateRequest) error
	GetProfile(ctx context.Context) (employee.GetProfileResponse, error)
}
