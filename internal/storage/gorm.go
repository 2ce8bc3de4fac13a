package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campusvoice/backend/internal/models"
)

// GormStore is the Postgres-backed Store implementation.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(user *models.User) error {
	var existing models.User
	err := s.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(user).Error
}

func (s *GormStore) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) UpdateUser(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *GormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at desc").Find(&users).Error
	return users, err
}

func (s *GormStore) CountUsers() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (s *GormStore) CountActiveAdmins() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("role = ? AND is_active = ?", models.RoleAdmin, true).
		Count(&count).Error
	return count, err
}

func (s *GormStore) CreateComplaint(complaint *models.Complaint) error {
	return s.db.Create(complaint).Error
}

func (s *GormStore) ComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.db.Preload("User").First(&complaint, id).Error; err != nil {
		return nil, translate(err)
	}
	return &complaint, nil
}

func (s *GormStore) UpdateComplaint(complaint *models.Complaint) error {
	return s.db.Save(complaint).Error
}

func (s *GormStore) ListComplaints(filter ComplaintFilter) ([]models.Complaint, int64, error) {
	query := s.db.Model(&models.Complaint{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var complaints []models.Complaint
	offset := (filter.Page - 1) * filter.PageSize
	err := query.Preload("User").
		Order("created_at desc").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&complaints).Error
	return complaints, total, err
}

// AddVote is the one write that must survive concurrent callers: the voter
// set membership check, the append and the counter increment all happen in
// a single conditional UPDATE, so two racing votes can never double-count.
func (s *GormStore) AddVote(complaintID, voterID uint) error {
	result := s.db.Model(&models.Complaint{}).
		Where("id = ? AND NOT (?::bigint = ANY(COALESCE(voted_by, '{}')))", complaintID, int64(voterID)).
		Updates(map[string]interface{}{
			"voted_by": gorm.Expr("array_append(COALESCE(voted_by, '{}'), ?::bigint)", int64(voterID)),
			"voted":    gorm.Expr("voted + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// No row updated: either the complaint is missing or the voter is
		// already in the set.
		var count int64
		if err := s.db.Model(&models.Complaint{}).Where("id = ?", complaintID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrDuplicateVote
	}
	return nil
}

func (s *GormStore) CountComplaints() (int64, error) {
	var count int64
	err := s.db.Model(&models.Complaint{}).Count(&count).Error
	return count, err
}

func (s *GormStore) CountComplaintsByStatus(status models.ComplaintStatus) (int64, error) {
	var count int64
	err := s.db.Model(&models.Complaint{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (s *GormStore) ComplaintsByMonth() ([]models.MonthlyCount, error) {
	var rows []models.MonthlyCount
	err := s.db.Model(&models.Complaint{}).
		Select("EXTRACT(YEAR FROM created_at)::int AS year, EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*) AS count").
		Group("EXTRACT(YEAR FROM created_at), EXTRACT(MONTH FROM created_at)").
		Order("EXTRACT(YEAR FROM created_at), EXTRACT(MONTH FROM created_at)").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) ComplaintsByCategory() ([]models.CategoryCount, error) {
	var rows []models.CategoryCount
	err := s.db.Model(&models.Complaint{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) ComplaintsByLocation() ([]models.LocationCount, error) {
	var rows []models.LocationCount
	err := s.db.Model(&models.Complaint{}).
		Select("location, COUNT(*) AS count").
		Group("location").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) ResolutionStats() (int64, float64, error) {
	var row struct {
		Count int64
		AvgMs float64
	}
	err := s.db.Model(&models.Complaint{}).
		Select("COUNT(*) AS count, COALESCE(AVG(EXTRACT(EPOCH FROM (resolved_at - created_at)) * 1000), 0) AS avg_ms").
		Where("status = ? AND resolved_at IS NOT NULL", models.StatusResolved).
		Scan(&row).Error
	return row.Count, row.AvgMs, err
}

func (s *GormStore) CreateCategory(category *models.Category) error {
	var existing models.Category
	err := s.db.Where("name = ?", category.Name).First(&existing).Error
	if err == nil {
		return ErrDuplicateCategory
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(category).Error
}

func (s *GormStore) CategoryByName(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *GormStore) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name").Find(&categories).Error
	return categories, err
}

func (s *GormStore) RenameCategory(id uint, name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	var existing models.Category
	err := s.db.Where("name = ? AND id <> ?", name, id).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateCategory
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	category.Name = name
	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) DeleteCategory(id uint) error {
	result := s.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CreateContact(contact *models.Contact) error {
	return s.db.Create(contact).Error
}

func (s *GormStore) ListContacts() ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.db.Order("created_at desc").Find(&contacts).Error
	return contacts, err
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
