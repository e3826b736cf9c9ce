package repository

import (
	"context"
	"errors"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	domainRepo "github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type returnRepository struct {
	db *gorm.DB
}

// NewReturnRepository creates a new return challan repository
func NewReturnRepository(db *gorm.DB) domainRepo.ReturnRepository {
	return &returnRepository{db: db}
}

func (r *returnRepository) Create(ctx context.Context, ret *entity.ReturnChallan) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

func (r *returnRepository) CreateItems(ctx context.Context, items []entity.ReturnItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *returnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReturnChallan, error) {
	var ret entity.ReturnChallan
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		First(&ret, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ret, err
}

func (r *returnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ReturnChallan{}, "id = ?", id).Error
}

func (r *returnRepository) List(ctx context.Context, params *domainRepo.ReturnFilterParams) ([]entity.ReturnChallan, int64, error) {
	var returns []entity.ReturnChallan
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ReturnChallan{})

	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}
	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}
	if params.Search != "" {
		query = query.Where("return_no ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Preload("Client").
		Order("date DESC, created_at DESC").
		Find(&returns).Error

	return returns, total, err
}

// NextSequence returns the next return challan sequence number, counting
// soft-deleted rows so numbers are never reused.
func (r *returnRepository) NextSequence(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.ReturnChallan{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

func (r *returnRepository) TotalReturnedQuantity(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.ReturnItem{}).
		Select("COALESCE(SUM(quantity + borrowed_stock), 0)").
		Where("deleted_at IS NULL").
		Scan(&total).Error
	return total, err
}
