package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/campusvoice/backend/internal/classifier"
	"github.com/campusvoice/backend/internal/models"
	"github.com/campusvoice/backend/internal/storage"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ComplaintService owns every state-changing operation on complaints.
type ComplaintService struct {
	store storage.Store
}

func NewComplaintService(store storage.Store) *ComplaintService {
	return &ComplaintService{store: store}
}

// CreateComplaintInput carries a new submission. A nil UserID makes the
// complaint anonymous. Priority is optional; when set it overrides the
// classifier's priority.
type CreateComplaintInput struct {
	UserID      *uint
	Title       string
	Description string
	Category    string
	Location    string
	Priority    models.ComplaintPriority
	Image       string
}

// UpdateComplaintInput is a partial update: empty fields are left
// unchanged on the complaint.
type UpdateComplaintInput struct {
	Title       string
	Description string
	Category    string
	Location    string
	Priority    models.ComplaintPriority
}

// ListComplaintsInput filters and paginates a listing. Page and PageSize
// default to 1 and 20; negative values or a PageSize above 100 are
// rejected.
type ListComplaintsInput struct {
	Status   models.ComplaintStatus
	Category string
	Search   string
	UserID   *uint
	Page     int
	PageSize int
}

// ComplaintPage is one page of a complaint listing.
type ComplaintPage struct {
	Complaints []models.Complaint `json:"complaints"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

// Create validates and classifies a submission, rejecting spam or
// offensive content before anything is persisted. The classifier decides
// category and summary; when it finds no category match the caller's
// category is kept. The caller's priority, when given, wins over the
// classifier's.
func (s *ComplaintService) Create(input CreateComplaintInput) (*models.Complaint, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	category := strings.TrimSpace(input.Category)
	location := strings.TrimSpace(input.Location)

	if title == "" {
		return nil, ErrValidation("title is required")
	}
	if description == "" {
		return nil, ErrValidation("description is required")
	}
	if category == "" {
		return nil, ErrValidation("category is required")
	}
	if location == "" {
		return nil, ErrValidation("location is required")
	}
	if input.Priority != "" && !models.ValidPriority(input.Priority) {
		return nil, ErrValidation("priority must be High, Medium or Low")
	}

	result := classifier.Classify(title, description)
	if result.IsSpam || result.IsOffensive {
		return nil, ErrRejectedContent("complaint was flagged as spam or offensive and will not be filed")
	}

	if result.Category != classifier.DefaultCategory {
		category = result.Category
	}
	priority := result.Priority
	if input.Priority != "" {
		priority = input.Priority
	}

	complaint := &models.Complaint{
		Title:       title,
		Description: description,
		Category:    category,
		Location:    location,
		Priority:    priority,
		Status:      models.StatusPending,
		Summary:     result.Summary,
		Image:       input.Image,
		UserID:      input.UserID,
		Voted:       0,
		VotedBy:     pq.Int64Array{},
	}
	if err := s.store.CreateComplaint(complaint); err != nil {
		return nil, ErrStore(err)
	}
	return complaint, nil
}

// Update applies a falsy-coalescing merge: each supplied non-empty field
// replaces the stored one, everything else is untouched. Status is never
// changed here.
func (s *ComplaintService) Update(id uint, input UpdateComplaintInput) (*models.Complaint, error) {
	if input.Priority != "" && !models.ValidPriority(input.Priority) {
		return nil, ErrValidation("priority must be High, Medium or Low")
	}

	complaint, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if value := strings.TrimSpace(input.Title); value != "" {
		complaint.Title = value
	}
	if value := strings.TrimSpace(input.Description); value != "" {
		complaint.Description = value
	}
	if value := strings.TrimSpace(input.Category); value != "" {
		complaint.Category = value
	}
	if value := strings.TrimSpace(input.Location); value != "" {
		complaint.Location = value
	}
	if input.Priority != "" {
		complaint.Priority = input.Priority
	}

	if err := s.store.UpdateComplaint(complaint); err != nil {
		return nil, ErrStore(err)
	}
	return complaint, nil
}

// TransitionStatus moves a complaint to newStatus. ResolvedAt is written
// exactly once, on the first entry into resolved; later transitions,
// including resolved → resolved, leave it alone.
func (s *ComplaintService) TransitionStatus(id uint, newStatus models.ComplaintStatus) (*models.Complaint, error) {
	if !models.ValidStatus(newStatus) {
		return nil, ErrValidation(fmt.Sprintf("invalid status %q", newStatus))
	}

	complaint, err := s.get(id)
	if err != nil {
		return nil, err
	}

	complaint.Status = newStatus
	if newStatus == models.StatusResolved && complaint.ResolvedAt == nil {
		now := time.Now()
		complaint.ResolvedAt = &now
	}

	if err := s.store.UpdateComplaint(complaint); err != nil {
		return nil, ErrStore(err)
	}
	return complaint, nil
}

// Vote records one vote by voterID. The membership check, set append and
// counter increment happen in a single conditional store update, so
// concurrent votes can neither double-count nor desync the counter from
// the voter set.
func (s *ComplaintService) Vote(id, voterID uint) (*models.Complaint, error) {
	err := s.store.AddVote(id, voterID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, ErrNotFound(fmt.Sprintf("complaint %d not found", id))
	case errors.Is(err, storage.ErrDuplicateVote):
		return nil, ErrAlreadyVoted("you have already voted on this complaint")
	case err != nil:
		return nil, ErrStore(err)
	}
	return s.get(id)
}

// Get returns one complaint by id.
func (s *ComplaintService) Get(id uint) (*models.Complaint, error) {
	return s.get(id)
}

// List returns one page of complaints, newest first.
func (s *ComplaintService) List(input ListComplaintsInput) (*ComplaintPage, error) {
	if input.Status != "" && !models.ValidStatus(input.Status) {
		return nil, ErrValidation(fmt.Sprintf("invalid status %q", input.Status))
	}
	if input.Page < 0 || input.PageSize < 0 {
		return nil, ErrValidation("page and pageSize must be positive")
	}
	if input.PageSize > maxPageSize {
		return nil, ErrValidation(fmt.Sprintf("pageSize may not exceed %d", maxPageSize))
	}
	page := input.Page
	if page == 0 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	complaints, total, err := s.store.ListComplaints(storage.ComplaintFilter{
		Status:   input.Status,
		Category: input.Category,
		Search:   strings.TrimSpace(input.Search),
		UserID:   input.UserID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, ErrStore(err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &ComplaintPage{
		Complaints: complaints,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *ComplaintService) get(id uint) (*models.Complaint, error) {
	complaint, err := s.store.ComplaintByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound(fmt.Sprintf("complaint %d not found", id))
	}
	if err != nil {
		return nil, ErrStore(err)
	}
	return complaint, nil
}
