package repository

import (
	"context"

	"github.com/yukikurage/collabhub/internal/database"
	"github.com/yukikurage/collabhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(ctx context.Context, id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db.WithContext(ctx)

	// Apply preloading if specified
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// ListByOwner lists projects owned by a user, newest first
func (r *GormProjectRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Preload("Subfield").
		Preload("Collaborators", func(db *gorm.DB) *gorm.DB {
			return db.Order("users.name ASC")
		}).
		Where("owner_id = ?", ownerID).
		Scopes(database.NewestFirst("projects")).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListBySubfield lists projects in a subfield with their owner, newest first
func (r *GormProjectRepository) ListBySubfield(ctx context.Context, subfieldID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("subfield_id = ?", subfieldID).
		Scopes(database.NewestFirst("projects")).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListOwnersBySubfield lists distinct owners of projects in a subfield, by name
func (r *GormProjectRepository) ListOwnersBySubfield(ctx context.Context, subfieldID uint64) ([]models.User, error) {
	var users []models.User

	owners := r.db.Model(&models.Project{}).Select("owner_id").Where("subfield_id = ?", subfieldID)
	if err := r.db.WithContext(ctx).
		Where("id IN (?)", owners).
		Order("name ASC").
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddCollaborators adds members to a project; existing members are left as they are
func (r *GormProjectRepository) AddCollaborators(ctx context.Context, projectID uint64, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return nil
	}

	rows := make([]models.ProjectCollaborator, len(userIDs))
	for i, userID := range userIDs {
		rows[i] = models.ProjectCollaborator{
			ProjectID: projectID,
			UserID:    userID,
		}
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// ListCollaboratorIDs lists the member IDs of a project
func (r *GormProjectRepository) ListCollaboratorIDs(ctx context.Context, projectID uint64) ([]uint64, error) {
	var ids []uint64
	if err := r.db.WithContext(ctx).
		Model(&models.ProjectCollaborator{}).
		Where("project_id = ?", projectID).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
