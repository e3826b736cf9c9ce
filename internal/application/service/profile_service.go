package service

import (
	"context"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/centerhire/centerhire-api/pkg/apperror"
)

// ProfileService handles business profile operations
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile returns the business profile
func (s *ProfileService) GetProfile(ctx context.Context) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Business profile")
	}
	return profile, nil
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	Name              *string
	Site              *string
	Mobile            *string
	Address           *string
	DefaultRatePerDay *float64
}

// UpdateProfile updates the business profile
func (s *ProfileService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Business profile")
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Site != nil {
		profile.Site = *input.Site
	}
	if input.Mobile != nil {
		profile.Mobile = *input.Mobile
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.DefaultRatePerDay != nil {
		profile.DefaultRatePerDay = *input.DefaultRatePerDay
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
