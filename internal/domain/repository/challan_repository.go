package repository

import (
	"context"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/pkg/pagination"
	"github.com/google/uuid"
)

// ChallanRepository defines the interface for challan data operations
type ChallanRepository interface {
	Create(ctx context.Context, challan *entity.Challan) error
	CreateItems(ctx context.Context, items []entity.ChallanItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challan, error)
	GetByChallanNo(ctx context.Context, challanNo string) (*entity.Challan, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ChallanFilterParams) ([]entity.Challan, int64, error)
	NextSequence(ctx context.Context) (int, error)
	TotalIssuedQuantity(ctx context.Context) (int64, error)
}

// ChallanFilterParams contains filtering parameters for challan queries
type ChallanFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ClientID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
