package models

import (
	"time"
)

type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleAdmin   UserRole = "admin"
	RoleStudent UserRole = "student"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	Password         string    `json:"-" gorm:"not null"`
	Role             UserRole  `json:"role" gorm:"not null;default:'user'"`
	IsActive         bool      `json:"isActive" gorm:"not null;default:true"`
	Phone            string    `json:"phone"`
	Department       string    `json:"department"`
	RollNumber       string    `json:"rollNumber"`
	ProfileCompleted bool      `json:"profileCompleted" gorm:"not null;default:false"`
	Image            []byte    `json:"-" gorm:"type:bytea"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
