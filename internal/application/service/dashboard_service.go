package service

import (
	"context"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/repository"
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	clientRepo  repository.ClientRepository
	challanRepo repository.ChallanRepository
	returnRepo  repository.ReturnRepository
	billRepo    repository.BillRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	clientRepo repository.ClientRepository,
	challanRepo repository.ChallanRepository,
	returnRepo repository.ReturnRepository,
	billRepo repository.BillRepository,
) *DashboardService {
	return &DashboardService{
		clientRepo:  clientRepo,
		challanRepo: challanRepo,
		returnRepo:  returnRepo,
		billRepo:    billRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalClients      int64   `json:"total_clients"`
	PlatesOutstanding int64   `json:"plates_outstanding"`
	BillsThisMonth    int64   `json:"bills_this_month"`
	RevenueThisMonth  float64 `json:"revenue_this_month"`
}

// GetStats returns the dashboard statistics
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	clients, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalClients = clients

	issued, err := s.challanRepo.TotalIssuedQuantity(ctx)
	if err != nil {
		return nil, err
	}
	returned, err := s.returnRepo.TotalReturnedQuantity(ctx)
	if err != nil {
		return nil, err
	}
	stats.PlatesOutstanding = issued - returned
	if stats.PlatesOutstanding < 0 {
		stats.PlatesOutstanding = 0
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	bills, err := s.billRepo.CountSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	stats.BillsThisMonth = bills

	revenue, err := s.billRepo.RevenueSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	stats.RevenueThisMonth = revenue

	return stats, nil
}
