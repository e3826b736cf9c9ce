package repository

import (
	"context"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/google/uuid"
)

// PlateTypeRepository defines the interface for plate type data operations
type PlateTypeRepository interface {
	Create(ctx context.Context, plateType *entity.PlateType) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PlateType, error)
	GetBySize(ctx context.Context, size string) (*entity.PlateType, error)
	Update(ctx context.Context, plateType *entity.PlateType) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]entity.PlateType, error)
}
