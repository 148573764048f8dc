package repository

import (
	"context"
	"strings"

	"github.com/yukikurage/collabhub/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAll lists every user ordered by name
func (r *GormUserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListResearchers lists researchers matching every non-empty filter
func (r *GormUserRepository) ListResearchers(ctx context.Context, filter ResearcherFilter) ([]models.User, error) {
	var users []models.User

	query := r.db.WithContext(ctx).Model(&models.User{}).Where("user_type = ?", models.UserTypeResearcher)

	if filter.Field != "" {
		query = query.Where("LOWER(field) LIKE ? ESCAPE '!'", containsPattern(filter.Field))
	}
	if filter.Country != "" {
		query = query.Where("LOWER(country) LIKE ? ESCAPE '!'", containsPattern(filter.Country))
	}
	if filter.Institution != "" {
		query = query.Where("LOWER(institution) LIKE ? ESCAPE '!'", containsPattern(filter.Institution))
	}
	if filter.ExcludeID != 0 {
		query = query.Where("id <> ?", filter.ExcludeID)
	}

	if err := query.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete deletes a user
func (r *GormUserRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a lower-cased LIKE pattern matching s anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
