package handlers

import (
	"errors"
	"net/http"

	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/services/availability"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the catalog and per-date availability.
type AvailabilityHandler struct {
	Availability availability.AvailabilityService
	Catalog      serviceRepo.ServiceRepository
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(avail availability.AvailabilityService, catalog serviceRepo.ServiceRepository) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: avail, Catalog: catalog}
}

// GetServices returns the full treatment catalog.
func (h *AvailabilityHandler) GetServices(c *gin.Context) {
	services, err := h.Catalog.GetAll()
	if err != nil {
		getLogger(c).Error("failed to load service catalog", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load services", "")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailable returns the catalog with booked slots removed for the requested
// date. The date query parameter is required.
func (h *AvailabilityHandler) GetAvailable(c *gin.Context) {
	date := c.Query("date")

	services, err := h.Availability.Compute(date)
	if err != nil {
		if errors.Is(err, availability.ErrDateRequired) {
			utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
			return
		}
		getLogger(c).Error("failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", "")
		return
	}

	c.JSON(http.StatusOK, services)
}
