package repository

import (
	"context"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	domainRepo "github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionReader struct {
	db *gorm.DB
}

// NewTransactionReader creates a reader that loads a client's challans and
// return challans for the billing engine.
func NewTransactionReader(db *gorm.DB) domainRepo.TransactionReader {
	return &transactionReader{db: db}
}

// FetchTransactions loads both document sequences ordered by date ascending,
// created_at breaking ties, with line items attached. A nil start or end
// date leaves that side of the window open.
func (r *transactionReader) FetchTransactions(ctx context.Context, clientID uuid.UUID, startDate, endDate *time.Time) (*entity.ClientTransactions, error) {
	var challans []entity.Challan
	if err := r.windowed(ctx, clientID, startDate, endDate).
		Preload("Items").
		Order("date ASC, created_at ASC").
		Find(&challans).Error; err != nil {
		return nil, err
	}

	var returns []entity.ReturnChallan
	if err := r.windowed(ctx, clientID, startDate, endDate).
		Preload("Items").
		Order("date ASC, created_at ASC").
		Find(&returns).Error; err != nil {
		return nil, err
	}

	return &entity.ClientTransactions{
		Challans: challans,
		Returns:  returns,
	}, nil
}

func (r *transactionReader) windowed(ctx context.Context, clientID uuid.UUID, startDate, endDate *time.Time) *gorm.DB {
	query := r.db.WithContext(ctx).Where("client_id = ?", clientID)
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}
	return query
}
