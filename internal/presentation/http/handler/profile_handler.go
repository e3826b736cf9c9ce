package handler

import (
	"github.com/centerhire/centerhire-api/internal/application/service"
	"github.com/centerhire/centerhire-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles business profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles retrieving the business profile
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Business profile retrieved successfully", profile)
}

// Update handles updating the business profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req struct {
		Name              *string  `json:"name"`
		Site              *string  `json:"site"`
		Mobile            *string  `json:"mobile"`
		Address           *string  `json:"address"`
		DefaultRatePerDay *float64 `json:"default_rate_per_day"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		Name:              req.Name,
		Site:              req.Site,
		Mobile:            req.Mobile,
		Address:           req.Address,
		DefaultRatePerDay: req.DefaultRatePerDay,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Business profile updated successfully", profile)
}
