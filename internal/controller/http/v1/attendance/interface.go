package attendance

import (
	"context"
	"time"

	"hrm/backend/internal/entity"
	"hrm/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	RecordAction(ctx context.Context, request attendance.ActionRequest) (entity.Attendance, error)
	UpsertAdmin(ctx context.Context, request attendance.UpsertRequest) (entity.Attendance, error)
	GetSelfList(ctx context.Context, filter attendance.SelfFilter) ([]entity.Attendance, error)
	GetList(ctx context.Context, filter attendance.Filter) ([]attendance.GetListResponse, int, error)
	MonthlySummary(ctx context.Context, month time.Time) ([]attendance.ReportRow, error)
}
