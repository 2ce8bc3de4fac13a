package models

import (
	"time"

	"github.com/lib/pq"
)

type ComplaintStatus string
type ComplaintPriority string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in progress"
	StatusResolved   ComplaintStatus = "resolved"
)

const (
	PriorityHigh   ComplaintPriority = "High"
	PriorityMedium ComplaintPriority = "Medium"
	PriorityLow    ComplaintPriority = "Low"
)

// ValidStatus reports whether status is one of the three lifecycle states.
func ValidStatus(status ComplaintStatus) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ValidPriority reports whether priority is High, Medium or Low.
func ValidPriority(priority ComplaintPriority) bool {
	switch priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Complaint is a single submitted grievance. VotedBy is the authoritative
// voter set; Voted must always equal len(VotedBy). A nil UserID means the
// complaint was submitted anonymously.
type Complaint struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	Title       string            `json:"title" gorm:"not null"`
	Description string            `json:"description" gorm:"type:text;not null"`
	Category    string            `json:"category" gorm:"not null"`
	Location    string            `json:"location" gorm:"not null"`
	Priority    ComplaintPriority `json:"priority" gorm:"not null;default:'Medium'"`
	Status      ComplaintStatus   `json:"status" gorm:"not null;default:'pending'"`
	Summary     string            `json:"summary"`
	Image       string            `json:"image"`
	UserID      *uint             `json:"userId"`
	User        *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Voted       int               `json:"voted" gorm:"not null;default:0"`
	VotedBy     pq.Int64Array     `json:"votedBy" gorm:"type:bigint[]"`
	CreatedAt   time.Time         `json:"createdAt"`
	ResolvedAt  *time.Time        `json:"resolvedAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// HasVoted reports whether userID is already in the voter set.
func (c *Complaint) HasVoted(userID uint) bool {
	for _, id := range c.VotedBy {
		if uint(id) == userID {
			return true
		}
	}
	return false
}
