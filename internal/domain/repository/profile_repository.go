package repository

import (
	"context"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
)

// ProfileRepository defines the interface for business profile data operations
type ProfileRepository interface {
	Get(ctx context.Context) (*entity.BusinessProfile, error)
	Update(ctx context.Context, profile *entity.BusinessProfile) error
}
