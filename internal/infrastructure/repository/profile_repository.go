package repository

import (
	"context"
	"errors"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	domainRepo "github.com/centerhire/centerhire-api/internal/domain/repository"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new business profile repository
func NewProfileRepository(db *gorm.DB) domainRepo.ProfileRepository {
	return &profileRepository{db: db}
}

// Get returns the business profile. A single row is expected; the seed
// creates it on first boot.
func (r *profileRepository) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	var profile entity.BusinessProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
