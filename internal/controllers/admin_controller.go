package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusvoice/backend/internal/models"
	"github.com/campusvoice/backend/internal/services"
	"github.com/campusvoice/backend/internal/storage"
)

// AdminController groups the admin-only user management and analytics
// endpoints.
type AdminController struct {
	store     storage.Store
	analytics *services.AnalyticsService
}

func NewAdminController(store storage.Store, analytics *services.AnalyticsService) *AdminController {
	return &AdminController{store: store, analytics: analytics}
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

func (ac *AdminController) GetAnalytics(c *gin.Context) {
	snapshot, err := ac.analytics.Compute()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": snapshot})
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.store.ListUsers()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Failed to fetch users"})
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

// UpdateUserRole is the only path through which a user's role may change.
func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	role := models.UserRole(req.Role)
	if !models.ValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid role"})
		return
	}

	user, err := ac.store.UserByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	user.Role = role
	if err := ac.store.UpdateUser(user); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Failed to update user"})
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// SetUserActive soft-deactivates or reactivates an account. Users are
// never hard-deleted.
func (ac *AdminController) SetUserActive(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := ac.store.UserByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	user.IsActive = *req.IsActive
	if err := ac.store.UpdateUser(user); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Failed to update user"})
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}
