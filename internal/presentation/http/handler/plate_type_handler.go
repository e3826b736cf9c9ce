package handler

import (
	"github.com/centerhire/centerhire-api/internal/application/service"
	"github.com/centerhire/centerhire-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlateTypeHandler handles plate type HTTP requests
type PlateTypeHandler struct {
	plateTypeService *service.PlateTypeService
}

// NewPlateTypeHandler creates a new plate type handler
func NewPlateTypeHandler(plateTypeService *service.PlateTypeService) *PlateTypeHandler {
	return &PlateTypeHandler{plateTypeService: plateTypeService}
}

// List handles listing all plate types
func (h *PlateTypeHandler) List(c *gin.Context) {
	plateTypes, err := h.plateTypeService.ListPlateTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Plate types retrieved successfully", plateTypes)
}

// Create handles creating a plate type
func (h *PlateTypeHandler) Create(c *gin.Context) {
	var req struct {
		Size       string  `json:"size" binding:"required"`
		RatePerDay float64 `json:"rate_per_day" binding:"required"`
		TotalStock int     `json:"total_stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	plateType, err := h.plateTypeService.CreatePlateType(c.Request.Context(), &service.CreatePlateTypeInput{
		Size:       req.Size,
		RatePerDay: req.RatePerDay,
		TotalStock: req.TotalStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Plate type created successfully", plateType)
}

// Update handles updating a plate type
func (h *PlateTypeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid plate type ID")
		return
	}

	var req struct {
		RatePerDay *float64 `json:"rate_per_day"`
		TotalStock *int     `json:"total_stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	plateType, err := h.plateTypeService.UpdatePlateType(c.Request.Context(), id, &service.UpdatePlateTypeInput{
		RatePerDay: req.RatePerDay,
		TotalStock: req.TotalStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Plate type updated successfully", plateType)
}

// Delete handles deleting a plate type
func (h *PlateTypeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid plate type ID")
		return
	}

	if err := h.plateTypeService.DeletePlateType(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
