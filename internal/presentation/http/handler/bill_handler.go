package handler

import (
	"strconv"
	"time"

	"github.com/centerhire/centerhire-api/internal/application/service"
	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/centerhire/centerhire-api/internal/presentation/http/dto/response"
	"github.com/centerhire/centerhire-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BillHandler handles billing HTTP requests
type BillHandler struct {
	billingService *service.BillingService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

type billRequest struct {
	ClientID  uuid.UUID `json:"client_id" binding:"required"`
	BillDate  string    `json:"bill_date" binding:"required"`
	StartDate *string   `json:"start_date"`
	EndDate   *string   `json:"end_date"`

	ExtraCharges []struct {
		Description string  `json:"description" binding:"required"`
		Amount      float64 `json:"amount" binding:"required"`
	} `json:"extra_charges"`
	Discounts []struct {
		Description string  `json:"description" binding:"required"`
		Amount      float64 `json:"amount" binding:"required"`
	} `json:"discounts"`
}

func (r *billRequest) toInput() (*service.BillingInput, string) {
	billDate, err := time.Parse("2006-01-02", r.BillDate)
	if err != nil {
		return nil, "Invalid bill_date, expected yyyy-mm-dd"
	}

	input := &service.BillingInput{
		ClientID: r.ClientID,
		BillDate: billDate,
	}

	if r.StartDate != nil && *r.StartDate != "" {
		start, err := time.Parse("2006-01-02", *r.StartDate)
		if err != nil {
			return nil, "Invalid start_date, expected yyyy-mm-dd"
		}
		input.StartDate = &start
	}
	if r.EndDate != nil && *r.EndDate != "" {
		end, err := time.Parse("2006-01-02", *r.EndDate)
		if err != nil {
			return nil, "Invalid end_date, expected yyyy-mm-dd"
		}
		input.EndDate = &end
	}

	for _, charge := range r.ExtraCharges {
		input.ExtraCharges = append(input.ExtraCharges, entity.ExtraCharge{
			Description: charge.Description,
			Amount:      charge.Amount,
		})
	}
	for _, discount := range r.Discounts {
		input.Discounts = append(input.Discounts, entity.Discount{
			Description: discount.Description,
			Amount:      discount.Amount,
		})
	}

	return input, ""
}

// Preview handles running a billing calculation without persisting
func (h *BillHandler) Preview(c *gin.Context) {
	var req billRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, msg := req.toInput()
	if msg != "" {
		response.BadRequest(c, msg)
		return
	}

	calc, err := h.billingService.PreviewBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill preview calculated successfully", calc)
}

// Create handles creating and persisting a bill
func (h *BillHandler) Create(c *gin.Context) {
	var req billRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, msg := req.toInput()
	if msg != "" {
		response.BadRequest(c, msg)
		return
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// List handles listing bills
func (h *BillHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.BillFilterParams{
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

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles getting a single bill with its lines
func (h *BillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Delete handles deleting a bill
func (h *BillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billingService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
