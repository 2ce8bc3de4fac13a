package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusvoice/backend/internal/services"
)

// respondError maps a service failure kind onto an HTTP status and a JSON
// envelope. Everything unknown is treated as a storage outage.
func respondError(c *gin.Context, err error) {
	status := http.StatusServiceUnavailable
	switch services.KindOf(err) {
	case services.KindValidation:
		status = http.StatusBadRequest
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindAlreadyVoted, services.KindConflict:
		status = http.StatusConflict
	case services.KindRejectedContent:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

// currentUserID returns the authenticated user's id from the request
// context. The auth middleware guarantees it is present on protected
// routes.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
