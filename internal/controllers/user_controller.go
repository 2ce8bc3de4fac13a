package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusvoice/backend/internal/models"
	"github.com/campusvoice/backend/internal/storage"
)

type UserController struct {
	store storage.Store
}

func NewUserController(store storage.Store) *UserController {
	return &UserController{store: store}
}

type UpdateProfileRequest struct {
	Phone      string `json:"phone"`
	Department string `json:"department"`
	RollNumber string `json:"rollNumber"`
	Password   string `json:"password"`
	Image      string `json:"image"` // base64-encoded profile picture
}

type ProfileResponse struct {
	ID               uint            `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Role             models.UserRole `json:"role"`
	IsActive         bool            `json:"isActive"`
	Phone            string          `json:"phone"`
	Department       string          `json:"department"`
	RollNumber       string          `json:"rollNumber"`
	ProfileCompleted bool            `json:"profileCompleted"`
	Image            string          `json:"image,omitempty"`
}

func profileResponse(user *models.User) ProfileResponse {
	resp := ProfileResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Role:             user.Role,
		IsActive:         user.IsActive,
		Phone:            user.Phone,
		Department:       user.Department,
		RollNumber:       user.RollNumber,
		ProfileCompleted: user.ProfileCompleted,
	}
	if len(user.Image) > 0 {
		resp.Image = base64.StdEncoding.EncodeToString(user.Image)
	}
	return resp
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	user, err := uc.store.UserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": profileResponse(user)})
}

// UpdateProfile applies the supplied profile fields and marks the profile
// completed, mirroring the falsy-coalescing update style used for
// complaints.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := uc.store.UserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.RollNumber != "" {
		user.RollNumber = req.RollNumber
	}
	if req.Image != "" {
		image, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image must be base64 encoded"})
			return
		}
		user.Image = image
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 6 characters"})
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
			return
		}
		user.Password = string(hashed)
	}
	user.ProfileCompleted = true

	if err := uc.store.UpdateUser(user); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": profileResponse(user)})
}
