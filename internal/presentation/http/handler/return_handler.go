package handler

import (
	"strconv"
	"time"

	"github.com/centerhire/centerhire-api/internal/application/service"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/centerhire/centerhire-api/internal/presentation/http/dto/response"
	"github.com/centerhire/centerhire-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReturnHandler handles return challan HTTP requests
type ReturnHandler struct {
	returnService *service.ReturnService
}

// NewReturnHandler creates a new return handler
func NewReturnHandler(returnService *service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// List handles listing return challans
func (h *ReturnHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ReturnFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
	}

	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		params.ClientID = &clientID
	}

	startDate, err := parseDate(c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, "Invalid start_date, expected yyyy-mm-dd")
		return
	}
	endDate, err := parseDate(c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, "Invalid end_date, expected yyyy-mm-dd")
		return
	}
	params.StartDate = startDate
	params.EndDate = endDate

	result, err := h.returnService.ListReturns(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Return challans retrieved successfully", result)
}

// Create handles creating a return challan
func (h *ReturnHandler) Create(c *gin.Context) {
	var req struct {
		ClientID uuid.UUID `json:"client_id" binding:"required"`
		Date     string    `json:"date" binding:"required"`
		Note     *string   `json:"note"`
		Items    []struct {
			PlateSize     string `json:"plate_size" binding:"required"`
			Quantity      int    `json:"quantity" binding:"required,min=1"`
			BorrowedStock int    `json:"borrowed_stock"`
		} `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected yyyy-mm-dd")
		return
	}

	input := &service.CreateReturnInput{
		ClientID: req.ClientID,
		Date:     date,
		Note:     req.Note,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.ReturnItemInput{
			PlateSize:     item.PlateSize,
			Quantity:      item.Quantity,
			BorrowedStock: item.BorrowedStock,
		})
	}

	ret, err := h.returnService.CreateReturn(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Return challan created successfully", ret)
}

// Get handles getting a single return challan
func (h *ReturnHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid return challan ID")
		return
	}

	ret, err := h.returnService.GetReturn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Return challan retrieved successfully", ret)
}

// Delete handles deleting a return challan
func (h *ReturnHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid return challan ID")
		return
	}

	if err := h.returnService.DeleteReturn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
