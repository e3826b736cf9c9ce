package service

import (
	"context"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/centerhire/centerhire-api/pkg/apperror"
	"github.com/centerhire/centerhire-api/pkg/pagination"
	"github.com/google/uuid"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	Name    string
	Site    *string
	Mobile  *string
	Address *string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Client name is required")
	}

	client := &entity.Client{
		Name:    input.Name,
		Site:    input.Site,
		Mobile:  input.Mobile,
		Address: input.Address,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// UpdateClientInput represents the update client input
type UpdateClientInput struct {
	Name    *string
	Site    *string
	Mobile  *string
	Address *string
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Site != nil {
		client.Site = input.Site
	}
	if input.Mobile != nil {
		client.Mobile = input.Mobile
	}
	if input.Address != nil {
		client.Address = input.Address
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}
	return s.clientRepo.Delete(ctx, id)
}

// ListClients lists clients with filtering
func (s *ClientService) ListClients(ctx context.Context, params *repository.ClientFilterParams) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}
