package repository

import (
	"context"
	"errors"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	domainRepo "github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Client{}, "id = ?", id).Error
}

func (r *clientRepository) List(ctx context.Context, params *domainRepo.ClientFilterParams) ([]entity.Client, int64, error) {
	var clients []entity.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Client{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR site ILIKE ? OR mobile ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&clients).Error

	return clients, total, err
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Client{}).Count(&total).Error
	return total, err
}
