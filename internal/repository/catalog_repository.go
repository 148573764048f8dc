package repository

import (
	"context"

	"github.com/yukikurage/collabhub/internal/database"
	"github.com/yukikurage/collabhub/internal/models"
	"gorm.io/gorm"
)

// GormCatalogRepository is a GORM implementation of CatalogRepository
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) CreateField(ctx context.Context, field *models.Field) error {
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *GormCatalogRepository) FindField(ctx context.Context, name string) (*models.Field, error) {
	var field models.Field
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *GormCatalogRepository) ListFields(ctx context.Context) ([]models.Field, error) {
	var fields []models.Field
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// DeleteField deletes a field; subfields, problems and projects under it cascade
func (r *GormCatalogRepository) DeleteField(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.Field{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCatalogRepository) CreateSubfield(ctx context.Context, sub *models.Subfield) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *GormCatalogRepository) FindSubfield(ctx context.Context, id uint64) (*models.Subfield, error) {
	var sub models.Subfield
	if err := r.db.WithContext(ctx).Preload("Field").First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *GormCatalogRepository) ListSubfields(ctx context.Context, fieldName string) ([]models.Subfield, error) {
	var subs []models.Subfield
	query := r.db.WithContext(ctx).Preload("Field")
	if fieldName != "" {
		query = query.Where("field_name = ?", fieldName)
	}
	if err := query.Order("field_name ASC").Order("id ASC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *GormCatalogRepository) CreateProblem(ctx context.Context, problem *models.Problem) error {
	return r.db.WithContext(ctx).Create(problem).Error
}

func (r *GormCatalogRepository) FindProblem(ctx context.Context, id uint64) (*models.Problem, error) {
	var problem models.Problem
	if err := r.db.WithContext(ctx).Preload("Subfield.Field").First(&problem, id).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

// ListProblems lists problems for a subfield, or for every subfield of a field
func (r *GormCatalogRepository) ListProblems(ctx context.Context, filter ProblemFilter) ([]models.Problem, error) {
	var problems []models.Problem

	query := r.db.WithContext(ctx).Model(&models.Problem{}).Preload("Subfield.Field")
	if filter.SubfieldID != nil {
		query = query.Where("problems.subfield_id = ?", *filter.SubfieldID)
	} else {
		query = query.
			Joins("JOIN subfields ON subfields.id = problems.subfield_id").
			Where("subfields.field_name = ?", filter.FieldName)
	}

	if err := query.Scopes(database.BySeverity).Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}
