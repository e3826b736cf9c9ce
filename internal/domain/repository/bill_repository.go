package repository

import (
	"context"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	// GetLastBillNo returns the bill number of the most recently created
	// bill, or "" when no bill exists yet.
	GetLastBillNo(ctx context.Context) (string, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	RevenueSince(ctx context.Context, since time.Time) (float64, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ClientID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
