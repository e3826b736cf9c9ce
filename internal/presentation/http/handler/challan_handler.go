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

// ChallanHandler handles challan-related HTTP requests
type ChallanHandler struct {
	challanService *service.ChallanService
}

// NewChallanHandler creates a new challan handler
func NewChallanHandler(challanService *service.ChallanService) *ChallanHandler {
	return &ChallanHandler{challanService: challanService}
}

// List handles listing challans
func (h *ChallanHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ChallanFilterParams{
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

	result, err := h.challanService.ListChallans(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Challans retrieved successfully", result)
}

// Create handles creating a challan
func (h *ChallanHandler) Create(c *gin.Context) {
	var req struct {
		ClientID  uuid.UUID `json:"client_id" binding:"required"`
		Date      string    `json:"date" binding:"required"`
		VehicleNo *string   `json:"vehicle_no"`
		Note      *string   `json:"note"`
		Items     []struct {
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

	input := &service.CreateChallanInput{
		ClientID:  req.ClientID,
		Date:      date,
		VehicleNo: req.VehicleNo,
		Note:      req.Note,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.ChallanItemInput{
			PlateSize:     item.PlateSize,
			Quantity:      item.Quantity,
			BorrowedStock: item.BorrowedStock,
		})
	}

	challan, err := h.challanService.CreateChallan(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Challan created successfully", challan)
}

// Get handles getting a single challan
func (h *ChallanHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid challan ID")
		return
	}

	challan, err := h.challanService.GetChallan(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Challan retrieved successfully", challan)
}

// Delete handles deleting a challan
func (h *ChallanHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid challan ID")
		return
	}

	if err := h.challanService.DeleteChallan(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
