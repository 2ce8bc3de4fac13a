// Package storage defines the persistence primitives the services are built
// on: insert, find, filtered listing, atomic conditional vote update, count
// and group-and-count. The production implementation runs on GORM/Postgres;
// tests use an in-memory implementation of the same interface.
package storage

import (
	"errors"

	"github.com/campusvoice/backend/internal/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateVote     = errors.New("user has already voted")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateCategory = errors.New("category already exists")
)

// ComplaintFilter narrows a complaint listing. Zero values mean "no
// constraint". Search matches title or description, case-insensitively.
type ComplaintFilter struct {
	Status   models.ComplaintStatus
	Category string
	Search   string
	UserID   *uint
	Page     int
	PageSize int
}

// Store is the persistence boundary consumed by the services. Errors other
// than the sentinels above indicate infrastructure failure.
type Store interface {
	// Users
	CreateUser(user *models.User) error
	UserByID(id uint) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	ListUsers() ([]models.User, error)
	CountUsers() (int64, error)
	CountActiveAdmins() (int64, error)

	// Complaints
	CreateComplaint(complaint *models.Complaint) error
	ComplaintByID(id uint) (*models.Complaint, error)
	UpdateComplaint(complaint *models.Complaint) error
	ListComplaints(filter ComplaintFilter) ([]models.Complaint, int64, error)

	// AddVote appends voterID to the complaint's voter set and increments
	// the vote counter as one atomic conditional update. It returns
	// ErrDuplicateVote when voterID is already in the set and ErrNotFound
	// when the complaint does not exist.
	AddVote(complaintID, voterID uint) error

	CountComplaints() (int64, error)
	CountComplaintsByStatus(status models.ComplaintStatus) (int64, error)
	ComplaintsByMonth() ([]models.MonthlyCount, error)
	ComplaintsByCategory() ([]models.CategoryCount, error)
	ComplaintsByLocation() ([]models.LocationCount, error)

	// ResolutionStats returns the number of resolved complaints that carry
	// a resolution timestamp and their mean resolution time in
	// milliseconds. The average is 0 when the count is 0.
	ResolutionStats() (int64, float64, error)

	// Categories
	CreateCategory(category *models.Category) error
	CategoryByName(name string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	RenameCategory(id uint, name string) (*models.Category, error)
	DeleteCategory(id uint) error

	// Contacts
	CreateContact(contact *models.Contact) error
	ListContacts() ([]models.Contact, error)
}
