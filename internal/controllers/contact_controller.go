package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusvoice/backend/internal/models"
	"github.com/campusvoice/backend/internal/storage"
)

type ContactController struct {
	store storage.Store
}

func NewContactController(store storage.Store) *ContactController {
	return &ContactController{store: store}
}

type ContactRequest struct {
	Message string `json:"message" binding:"required"`
}

func (cc *ContactController) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	contact := models.Contact{Message: req.Message}
	if err := cc.store.CreateContact(&contact); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Failed to save message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": contact})
}

func (cc *ContactController) List(c *gin.Context) {
	contacts, err := cc.store.ListContacts()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": contacts})
}
