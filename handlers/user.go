package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account upserts, listings and role management.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// UpsertUser creates or updates the account under :email and returns a fresh
// access token. This is the sign-in path: every call renews the token.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}

	token, err := h.Service.Upsert(email, req)
	if err != nil {
		getLogger(c).Error("failed to upsert user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store user", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"acknowledged": true}, "token": token})
}

// GetUsers returns all portal accounts. Token-protected.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Service.GetAll()
	if err != nil {
		getLogger(c).Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAdmin reports whether the account under :email holds the admin role.
func (h *UserHandler) GetAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		getLogger(c).Error("failed to check admin role", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check role", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// MakeAdmin grants the admin role to the account under :email. The requester
// must already be an admin.
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	target := c.Param("email")
	requester := middleware.AuthedEmail(c)

	if err := h.Service.MakeAdmin(requester, target); err != nil {
		if errors.Is(err, user.ErrNotAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		getLogger(c).Error("failed to grant admin role",
			zap.String("requester", requester),
			zap.String("target", target),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to grant admin role", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": 1})
}
