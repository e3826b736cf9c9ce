package repository

import (
	"context"
	"errors"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	domainRepo "github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type plateTypeRepository struct {
	db *gorm.DB
}

// NewPlateTypeRepository creates a new plate type repository
func NewPlateTypeRepository(db *gorm.DB) domainRepo.PlateTypeRepository {
	return &plateTypeRepository{db: db}
}

func (r *plateTypeRepository) Create(ctx context.Context, plateType *entity.PlateType) error {
	return r.db.WithContext(ctx).Create(plateType).Error
}

func (r *plateTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PlateType, error) {
	var plateType entity.PlateType
	err := r.db.WithContext(ctx).First(&plateType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &plateType, err
}

func (r *plateTypeRepository) GetBySize(ctx context.Context, size string) (*entity.PlateType, error) {
	var plateType entity.PlateType
	err := r.db.WithContext(ctx).First(&plateType, "size = ?", size).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &plateType, err
}

func (r *plateTypeRepository) Update(ctx context.Context, plateType *entity.PlateType) error {
	return r.db.WithContext(ctx).Save(plateType).Error
}

func (r *plateTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PlateType{}, "id = ?", id).Error
}

func (r *plateTypeRepository) GetAll(ctx context.Context) ([]entity.PlateType, error) {
	var plateTypes []entity.PlateType
	err := r.db.WithContext(ctx).Order("size ASC").Find(&plateTypes).Error
	return plateTypes, err
}
