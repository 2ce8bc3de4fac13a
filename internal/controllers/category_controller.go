package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusvoice/backend/internal/models"
	"github.com/campusvoice/backend/internal/storage"
)

type CategoryController struct {
	store storage.Store
}

func NewCategoryController(store storage.Store) *CategoryController {
	return &CategoryController{store: store}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.store.ListCategories()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

func (cc *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	category := models.Category{Name: strings.TrimSpace(req.Name)}
	if category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
		return
	}
	if err := cc.store.CreateCategory(&category); err != nil {
		if errors.Is(err, storage.ErrDuplicateCategory) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Category already exists"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

func (cc *CategoryController) Rename(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
		return
	}

	category, err := cc.store.RenameCategory(id, name)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
		case errors.Is(err, storage.ErrDuplicateCategory):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Category already exists"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Failed to rename category"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

// Delete removes a category. Complaints already tagged with its name keep
// that name; the reference is denormalized on purpose.
func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id"})
		return
	}

	if err := cc.store.DeleteCategory(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
}
