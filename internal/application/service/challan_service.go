package service

import (
	"context"
	"fmt"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/centerhire/centerhire-api/pkg/apperror"
	"github.com/centerhire/centerhire-api/pkg/pagination"
	"github.com/google/uuid"
)

// ChallanService handles issuance challan operations
type ChallanService struct {
	challanRepo repository.ChallanRepository
	clientRepo  repository.ClientRepository
}

// NewChallanService creates a new challan service
func NewChallanService(challanRepo repository.ChallanRepository, clientRepo repository.ClientRepository) *ChallanService {
	return &ChallanService{
		challanRepo: challanRepo,
		clientRepo:  clientRepo,
	}
}

// ChallanItemInput represents one plate-size line on a new challan
type ChallanItemInput struct {
	PlateSize     string
	Quantity      int
	BorrowedStock int
}

// CreateChallanInput represents the create challan input
type CreateChallanInput struct {
	ClientID  uuid.UUID
	Date      time.Time
	VehicleNo *string
	Note      *string
	Items     []ChallanItemInput
}

// CreateChallan creates a new challan with its line items
func (s *ChallanService) CreateChallan(ctx context.Context, input *CreateChallanInput) (*entity.Challan, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Challan requires at least one item")
	}

	nextNum, err := s.challanRepo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}

	challan := &entity.Challan{
		ClientID:  input.ClientID,
		ChallanNo: fmt.Sprintf("CH-%04d", nextNum),
		Date:      input.Date,
		VehicleNo: input.VehicleNo,
		Note:      input.Note,
	}

	if err := s.challanRepo.Create(ctx, challan); err != nil {
		return nil, err
	}

	items := make([]entity.ChallanItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.ChallanItem{
			ChallanID:     challan.ID,
			PlateSize:     item.PlateSize,
			Quantity:      item.Quantity,
			BorrowedStock: item.BorrowedStock,
		})
	}
	if err := s.challanRepo.CreateItems(ctx, items); err != nil {
		return nil, err
	}

	return s.challanRepo.GetByID(ctx, challan.ID)
}

// GetChallan retrieves a challan with its items
func (s *ChallanService) GetChallan(ctx context.Context, id uuid.UUID) (*entity.Challan, error) {
	challan, err := s.challanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if challan == nil {
		return nil, apperror.NewNotFoundError("Challan")
	}
	return challan, nil
}

// DeleteChallan removes a challan
func (s *ChallanService) DeleteChallan(ctx context.Context, id uuid.UUID) error {
	challan, err := s.challanRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if challan == nil {
		return apperror.NewNotFoundError("Challan")
	}
	return s.challanRepo.Delete(ctx, id)
}

// ListChallans lists challans with filtering
func (s *ChallanService) ListChallans(ctx context.Context, params *repository.ChallanFilterParams) (*pagination.PaginatedResult[entity.Challan], error) {
	challans, total, err := s.challanRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(challans, pag), nil
}
