package handler

import (
	"strconv"

	"github.com/centerhire/centerhire-api/internal/application/service"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/centerhire/centerhire-api/internal/presentation/http/dto/response"
	"github.com/centerhire/centerhire-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles listing clients
func (h *ClientHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ClientFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
	}

	result, err := h.clientService.ListClients(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Clients retrieved successfully", result)
}

// Create handles creating a client
func (h *ClientHandler) Create(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required"`
		Site    *string `json:"site"`
		Mobile  *string `json:"mobile"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), &service.CreateClientInput{
		Name:    req.Name,
		Site:    req.Site,
		Mobile:  req.Mobile,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Client created successfully", client)
}

// Get handles getting a single client
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client retrieved successfully", client)
}

// Update handles updating a client
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Site    *string `json:"site"`
		Mobile  *string `json:"mobile"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, &service.UpdateClientInput{
		Name:    req.Name,
		Site:    req.Site,
		Mobile:  req.Mobile,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client updated successfully", client)
}

// Delete handles deleting a client
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
