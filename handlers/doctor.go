package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-gated doctor CRUD routes.
type DoctorHandler struct {
	Service doctor.DoctorService
}

// NewDoctorHandler creates a DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// GetDoctors returns all doctors.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Service.List()
	if err != nil {
		getLogger(c).Error("failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list doctors", "")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctor stores a new doctor record.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var req models.Doctor
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor payload", err.Error())
		return
	}

	created, err := h.Service.Add(req)
	if err != nil {
		getLogger(c).Error("failed to add doctor", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add doctor", "")
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteDoctor removes the doctor record under :email.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	email := c.Param("email")

	if err := h.Service.Remove(email); err != nil {
		getLogger(c).Error("failed to delete doctor", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}
