package services

import (
	"github.com/campusvoice/backend/internal/models"
	"github.com/campusvoice/backend/internal/storage"
)

// AnalyticsService derives summary statistics over the user and complaint
// collections. Compute is read-only: a point-in-time, non-locking scan
// with no isolation guarantee against concurrent writes.
type AnalyticsService struct {
	store storage.Store
}

func NewAnalyticsService(store storage.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Compute builds a full snapshot. Every grouping is a plain group-and-count
// against the store; the average resolution time is 0 when there are no
// resolved complaints.
func (s *AnalyticsService) Compute() (*models.AnalyticsSnapshot, error) {
	totalUsers, err := s.store.CountUsers()
	if err != nil {
		return nil, ErrStore(err)
	}
	received, err := s.store.CountComplaints()
	if err != nil {
		return nil, ErrStore(err)
	}
	resolved, err := s.store.CountComplaintsByStatus(models.StatusResolved)
	if err != nil {
		return nil, ErrStore(err)
	}
	moderators, err := s.store.CountActiveAdmins()
	if err != nil {
		return nil, ErrStore(err)
	}
	monthly, err := s.store.ComplaintsByMonth()
	if err != nil {
		return nil, ErrStore(err)
	}
	byCategory, err := s.store.ComplaintsByCategory()
	if err != nil {
		return nil, ErrStore(err)
	}
	byLocation, err := s.store.ComplaintsByLocation()
	if err != nil {
		return nil, ErrStore(err)
	}
	_, avgMs, err := s.store.ResolutionStats()
	if err != nil {
		return nil, ErrStore(err)
	}

	if monthly == nil {
		monthly = []models.MonthlyCount{}
	}
	if byCategory == nil {
		byCategory = []models.CategoryCount{}
	}
	if byLocation == nil {
		byLocation = []models.LocationCount{}
	}

	return &models.AnalyticsSnapshot{
		TotalUsers:           totalUsers,
		ComplaintsReceived:   received,
		ResolvedComplaints:   resolved,
		ActiveModerators:     moderators,
		MonthlyComplaints:    monthly,
		ComplaintsByCategory: byCategory,
		ComplaintsByLocation: byLocation,
		AverageResolutionMs:  avgMs,
	}, nil
}
