package service

import (
	"context"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/centerhire/centerhire-api/pkg/apperror"
	"github.com/google/uuid"
)

// PlateTypeService handles plate type and rate table operations
type PlateTypeService struct {
	plateTypeRepo repository.PlateTypeRepository
}

// NewPlateTypeService creates a new plate type service
func NewPlateTypeService(plateTypeRepo repository.PlateTypeRepository) *PlateTypeService {
	return &PlateTypeService{plateTypeRepo: plateTypeRepo}
}

// CreatePlateTypeInput represents the create plate type input
type CreatePlateTypeInput struct {
	Size       string
	RatePerDay float64
	TotalStock int
}

// CreatePlateType creates a new plate type
func (s *PlateTypeService) CreatePlateType(ctx context.Context, input *CreatePlateTypeInput) (*entity.PlateType, error) {
	if input.Size == "" {
		return nil, apperror.NewBadRequestError("Plate size is required")
	}

	existing, err := s.plateTypeRepo.GetBySize(ctx, input.Size)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Plate size already exists")
	}

	plateType := &entity.PlateType{
		Size:       input.Size,
		RatePerDay: input.RatePerDay,
		TotalStock: input.TotalStock,
	}
	if err := s.plateTypeRepo.Create(ctx, plateType); err != nil {
		return nil, err
	}
	return plateType, nil
}

// UpdatePlateTypeInput represents the update plate type input
type UpdatePlateTypeInput struct {
	RatePerDay *float64
	TotalStock *int
}

// UpdatePlateType updates an existing plate type's rate or stock
func (s *PlateTypeService) UpdatePlateType(ctx context.Context, id uuid.UUID, input *UpdatePlateTypeInput) (*entity.PlateType, error) {
	plateType, err := s.plateTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plateType == nil {
		return nil, apperror.NewNotFoundError("Plate type")
	}

	if input.RatePerDay != nil {
		plateType.RatePerDay = *input.RatePerDay
	}
	if input.TotalStock != nil {
		plateType.TotalStock = *input.TotalStock
	}

	if err := s.plateTypeRepo.Update(ctx, plateType); err != nil {
		return nil, err
	}
	return plateType, nil
}

// DeletePlateType removes a plate type
func (s *PlateTypeService) DeletePlateType(ctx context.Context, id uuid.UUID) error {
	plateType, err := s.plateTypeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if plateType == nil {
		return apperror.NewNotFoundError("Plate type")
	}
	return s.plateTypeRepo.Delete(ctx, id)
}

// ListPlateTypes returns all plate types
func (s *PlateTypeService) ListPlateTypes(ctx context.Context) ([]entity.PlateType, error) {
	return s.plateTypeRepo.GetAll(ctx)
}
