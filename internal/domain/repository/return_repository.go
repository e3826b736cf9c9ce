package repository

import (
	"context"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/pkg/pagination"
	"github.com/google/uuid"
)

// ReturnRepository defines the interface for return challan data operations
type ReturnRepository interface {
	Create(ctx context.Context, ret *entity.ReturnChallan) error
	CreateItems(ctx context.Context, items []entity.ReturnItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReturnChallan, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ReturnFilterParams) ([]entity.ReturnChallan, int64, error)
	NextSequence(ctx context.Context) (int, error)
	TotalReturnedQuantity(ctx context.Context) (int64, error)
}

// ReturnFilterParams contains filtering parameters for return challan queries
type ReturnFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ClientID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
