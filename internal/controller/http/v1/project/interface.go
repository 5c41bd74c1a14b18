package project

import (
	"context"

	"hrm/backend/internal/entity"
	"hrm/backend/internal/repository/postgres/project"
)

type Project interface {
	GetList(ctx context.Context, filter project.Filter) ([]project.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.Project, error)
	Create(ctx context.Context, request project.CreateRequest) (entity.Project, error)
	UpdateColumns(ctx context.Context, request project.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
