package department

import (
	"context"

	"hrm/backend/internal/entity"
	"hrm/backend/internal/repository/postgres/department"
)

type Department interface {
	GetList(ctx context.Context, filter department.Filter) ([]department.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.Department, error)
	Create(ctx context.Context, request department.CreateRequest) (entity.Department, error)
	UpdateColumns(ctx context.Context, request department.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
