package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and patient booking history.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking records a booking. The response is 200 whether or not the
// booking went through; the success flag in the payload distinguishes a fresh
// booking from a duplicate, which carries the conflicting record.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	result, err := h.Service.Record(req)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking", vErr.Error())
			return
		}
		getLogger(c).Error("failed to record booking",
			zap.String("patient", req.Patient),
			zap.String("treatment", req.Treatment),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record booking", "")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPatientBookings returns the authenticated patient's bookings. The patient
// query parameter must match the token's email; a mismatch is Forbidden.
func (h *BookingHandler) GetPatientBookings(c *gin.Context) {
	patient := c.Query("patient")
	authedEmail := middleware.AuthedEmail(c)

	if patient == "" || patient != authedEmail {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
		return
	}

	bookings, err := h.Service.ListByPatient(patient)
	if err != nil {
		getLogger(c).Error("failed to list bookings", zap.String("patient", patient), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", "")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
