package leave

import (
	"context"

	"hrm/backend/internal/entity"
	"hrm/backend/internal/repository/postgres/leave"
)

type Leave interface {
	Request(ctx context.Context, request leave.CreateRequest) (entity.Leave, error)
	OwnerUpdate(ctx context.Context, request leave.UpdateRequest) (entity.Leave, error)
	OwnerCancel(ctx context.Context, id int) error
	AdminDecide(ctx context.Context, request leave.DecideRequest) (entity.Leave, error)
	AdminCreate(ctx context.Context, request leave.AdminCreateRequest) (entity.Leave, error)
	GetSelfList(ctx context.Context, filter leave.SelfFilter) ([]entity.Leave, error)
	GetList(ctx context.Context, filter leave.Filter) ([]leave.GetListResponse, int, error)
}
