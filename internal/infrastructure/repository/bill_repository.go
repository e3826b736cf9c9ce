package repository

import (
	"context"
	"errors"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	domainRepo "github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Charges").
		Preload("Client").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Bill{}, "id = ?", id).Error
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}
	if params.StartDate != nil {
		query = query.Where("bill_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("bill_date <= ?", *params.EndDate)
	}
	if params.Search != "" {
		query = query.Where("bill_no ILIKE ? OR client_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("bill_date DESC, created_at DESC").
		Find(&bills).Error

	return bills, total, err
}

// GetLastBillNo returns the bill number of the most recently created bill.
// Soft-deleted bills are included so their numbers are never reissued.
func (r *billRepository) GetLastBillNo(ctx context.Context) (string, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).Unscoped().
		Order("created_at DESC").
		First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return bill.BillNo, nil
}

func (r *billRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("bill_date >= ?", since).
		Count(&total).Error
	return total, err
}

func (r *billRepository) RevenueSince(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Select("COALESCE(SUM(grand_total), 0)").
		Where("bill_date >= ?", since).
		Scan(&total).Error
	return total, err
}
