package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/campusvoice/backend/internal/models"
	"github.com/campusvoice/backend/internal/storage"
)

// memStore is an in-memory storage.Store used by the service tests. Every
// method takes the mutex, so AddVote has the same atomicity the SQL
// conditional update gives the production store.
type memStore struct {
	mu             sync.Mutex
	users          map[uint]models.User
	complaints     map[uint]models.Complaint
	categories     map[uint]models.Category
	contacts       []models.Contact
	nextUserID     uint
	nextComplaint  uint
	nextCategoryID uint
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[uint]models.User),
		complaints: make(map[uint]models.Complaint),
		categories: make(map[uint]models.Category),
	}
}

func (m *memStore) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return storage.ErrDuplicateEmail
		}
	}
	m.nextUserID++
	user.ID = m.nextUserID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memStore) UserByID(id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

func (m *memStore) UserByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) UpdateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return storage.ErrNotFound
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memStore) ListUsers() ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

func (m *memStore) CountUsers() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memStore) CountActiveAdmins() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, user := range m.users {
		if user.Role == models.RoleAdmin && user.IsActive {
			count++
		}
	}
	return count, nil
}

func (m *memStore) CreateComplaint(complaint *models.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextComplaint++
	complaint.ID = m.nextComplaint
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = time.Now()
	}
	m.complaints[complaint.ID] = *complaint
	return nil
}

func (m *memStore) ComplaintByID(id uint) (*models.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	complaint, ok := m.complaints[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &complaint, nil
}

func (m *memStore) UpdateComplaint(complaint *models.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.complaints[complaint.ID]; !ok {
		return storage.ErrNotFound
	}
	m.complaints[complaint.ID] = *complaint
	return nil
}

func (m *memStore) ListComplaints(filter storage.ComplaintFilter) ([]models.Complaint, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]models.Complaint, 0, len(m.complaints))
	for _, complaint := range m.complaints {
		if filter.Status != "" && complaint.Status != filter.Status {
			continue
		}
		if filter.Category != "" && complaint.Category != filter.Category {
			continue
		}
		if filter.UserID != nil && (complaint.UserID == nil || *complaint.UserID != *filter.UserID) {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(complaint.Title), needle) &&
				!strings.Contains(strings.ToLower(complaint.Description), needle) {
				continue
			}
		}
		matched = append(matched, complaint)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))

	start := (filter.Page - 1) * filter.PageSize
	if start >= len(matched) {
		return []models.Complaint{}, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memStore) AddVote(complaintID, voterID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	complaint, ok := m.complaints[complaintID]
	if !ok {
		return storage.ErrNotFound
	}
	if complaint.HasVoted(voterID) {
		return storage.ErrDuplicateVote
	}
	complaint.VotedBy = append(complaint.VotedBy, int64(voterID))
	complaint.Voted++
	m.complaints[complaintID] = complaint
	return nil
}

func (m *memStore) CountComplaints() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.complaints)), nil
}

func (m *memStore) CountComplaintsByStatus(status models.ComplaintStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, complaint := range m.complaints {
		if complaint.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *memStore) ComplaintsByMonth() ([]models.MonthlyCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[[2]int]int64)
	for _, complaint := range m.complaints {
		key := [2]int{complaint.CreatedAt.Year(), int(complaint.CreatedAt.Month())}
		counts[key]++
	}
	rows := make([]models.MonthlyCount, 0, len(counts))
	for key, count := range counts {
		rows = append(rows, models.MonthlyCount{Year: key[0], Month: key[1], Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})
	return rows, nil
}

func (m *memStore) ComplaintsByCategory() ([]models.CategoryCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[string]int64)
	for _, complaint := range m.complaints {
		counts[complaint.Category]++
	}
	rows := make([]models.CategoryCount, 0, len(counts))
	for category, count := range counts {
		rows = append(rows, models.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})
	return rows, nil
}

func (m *memStore) ComplaintsByLocation() ([]models.LocationCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[string]int64)
	for _, complaint := range m.complaints {
		counts[complaint.Location]++
	}
	rows := make([]models.LocationCount, 0, len(counts))
	for location, count := range counts {
		rows = append(rows, models.LocationCount{Location: location, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Location < rows[j].Location
	})
	return rows, nil
}

func (m *memStore) ResolutionStats() (int64, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	var totalMs float64
	for _, complaint := range m.complaints {
		if complaint.Status == models.StatusResolved && complaint.ResolvedAt != nil {
			count++
			totalMs += float64(complaint.ResolvedAt.Sub(complaint.CreatedAt).Milliseconds())
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, totalMs / float64(count), nil
}

func (m *memStore) CreateCategory(category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.categories {
		if existing.Name == category.Name {
			return storage.ErrDuplicateCategory
		}
	}
	m.nextCategoryID++
	category.ID = m.nextCategoryID
	m.categories[category.ID] = *category
	return nil
}

func (m *memStore) CategoryByName(name string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, category := range m.categories {
		if category.Name == name {
			copied := category
			return &copied, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) ListCategories() ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	categories := make([]models.Category, 0, len(m.categories))
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (m *memStore) RenameCategory(id uint, name string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	category, ok := m.categories[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for otherID, existing := range m.categories {
		if otherID != id && existing.Name == name {
			return nil, storage.ErrDuplicateCategory
		}
	}
	category.Name = name
	m.categories[id] = category
	return &category, nil
}

func (m *memStore) DeleteCategory(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *memStore) CreateContact(contact *models.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	contact.ID = uint(len(m.contacts) + 1)
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	m.contacts = append(m.contacts, *contact)
	return nil
}

func (m *memStore) ListContacts() ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	contacts := make([]models.Contact, len(m.contacts))
	copy(contacts, m.contacts)
	return contacts, nil
}

// setComplaint overwrites a stored complaint directly, bypassing the
// service layer. Test fixtures use it to backdate createdAt/resolvedAt.
func (m *memStore) setComplaint(complaint models.Complaint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if complaint.ID == 0 {
		m.nextComplaint++
		complaint.ID = m.nextComplaint
	}
	m.complaints[complaint.ID] = complaint
}
