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

// ReturnService handles return challan operations
type ReturnService struct {
	returnRepo repository.ReturnRepository
	clientRepo repository.ClientRepository
}

// NewReturnService creates a new return service
func NewReturnService(returnRepo repository.ReturnRepository, clientRepo repository.ClientRepository) *ReturnService {
	return &ReturnService{
		returnRepo: returnRepo,
		clientRepo: clientRepo,
	}
}

// ReturnItemInput represents one plate-size line on a new return challan
type ReturnItemInput struct {
	PlateSize     string
	Quantity      int
	BorrowedStock int
}

// CreateReturnInput represents the create return challan input
type CreateReturnInput struct {
	ClientID uuid.UUID
	Date     time.Time
	Note     *string
	Items    []ReturnItemInput
}

// CreateReturn creates a new return challan with its line items
func (s *ReturnService) CreateReturn(ctx context.Context, input *CreateReturnInput) (*entity.ReturnChallan, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Return challan requires at least one item")
	}

	nextNum, err := s.returnRepo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}

	ret := &entity.ReturnChallan{
		ClientID: input.ClientID,
		ReturnNo: fmt.Sprintf("RC-%04d", nextNum),
		Date:     input.Date,
		Note:     input.Note,
	}

	if err := s.returnRepo.Create(ctx, ret); err != nil {
		return nil, err
	}

	items := make([]entity.ReturnItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.ReturnItem{
			ReturnChallanID: ret.ID,
			PlateSize:       item.PlateSize,
			Quantity:        item.Quantity,
			BorrowedStock:   item.BorrowedStock,
		})
	}
	if err := s.returnRepo.CreateItems(ctx, items); err != nil {
		return nil, err
	}

	return s.returnRepo.GetByID(ctx, ret.ID)
}

// GetReturn retrieves a return challan with its items
func (s *ReturnService) GetReturn(ctx context.Context, id uuid.UUID) (*entity.ReturnChallan, error) {
	ret, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Return challan")
	}
	return ret, nil
}

// DeleteReturn removes a return challan
func (s *ReturnService) DeleteReturn(ctx context.Context, id uuid.UUID) error {
	ret, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ret == nil {
		return apperror.NewNotFoundError("Return challan")
	}
	return s.returnRepo.Delete(ctx, id)
}

// ListReturns lists return challans with filtering
func (s *ReturnService) ListReturns(ctx context.Context, params *repository.ReturnFilterParams) (*pagination.PaginatedResult[entity.ReturnChallan], error) {
	returns, total, err := s.returnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(returns, pag), nil
}
