package repository

import (
	"context"
	"errors"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	domainRepo "github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type challanRepository struct {
	db *gorm.DB
}

// NewChallanRepository creates a new challan repository
func NewChallanRepository(db *gorm.DB) domainRepo.ChallanRepository {
	return &challanRepository{db: db}
}

func (r *challanRepository) Create(ctx context.Context, challan *entity.Challan) error {
	return r.db.WithContext(ctx).Create(challan).Error
}

func (r *challanRepository) CreateItems(ctx context.Context, items []entity.ChallanItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *challanRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challan, error) {
	var challan entity.Challan
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		First(&challan, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &challan, err
}

func (r *challanRepository) GetByChallanNo(ctx context.Context, challanNo string) (*entity.Challan, error) {
	var challan entity.Challan
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&challan, "challan_no = ?", challanNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &challan, err
}

func (r *challanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Challan{}, "id = ?", id).Error
}

func (r *challanRepository) List(ctx context.Context, params *domainRepo.ChallanFilterParams) ([]entity.Challan, int64, error) {
	var challans []entity.Challan
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Challan{})

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
		query = query.Where("challan_no ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Preload("Client").
		Order("date DESC, created_at DESC").
		Find(&challans).Error

	return challans, total, err
}

// NextSequence returns the next challan sequence number, counting soft-deleted
// rows so numbers are never reused.
func (r *challanRepository) NextSequence(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Challan{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

func (r *challanRepository) TotalIssuedQuantity(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.ChallanItem{}).
		Select("COALESCE(SUM(quantity + borrowed_stock), 0)").
		Where("deleted_at IS NULL").
		Scan(&total).Error
	return total, err
}
