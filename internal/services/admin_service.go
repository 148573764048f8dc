package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/repository"
	"gorm.io/gorm"
)

// AdminService registers and removes the reference data that the request surface only reads.
type AdminService struct {
	store *repository.Store
}

func NewAdminService(store *repository.Store) *AdminService {
	return &AdminService{store: store}
}

// CreateField registers a field.
func (s *AdminService) CreateField(ctx context.Context, name string) (*models.Field, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	field := &models.Field{Name: name}
	if err := s.store.Catalog().CreateField(ctx, field); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrFieldExists
		}
		return nil, fmt.Errorf("failed to create field: %w", err)
	}
	return field, nil
}

// CreateSubfield registers a subfield under an existing field.
func (s *AdminService) CreateSubfield(ctx context.Context, name, fieldName string) (*models.Subfield, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	sub := &models.Subfield{Name: name, FieldName: fieldName}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Catalog().FindField(ctx, fieldName); err != nil {
			return lookupErr(err, ErrFieldNotFound, "field")
		}
		if err := tx.Catalog().CreateSubfield(ctx, sub); err != nil {
			return fmt.Errorf("failed to create subfield: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// CreateUserInput represents input for registering a user
type CreateUserInput struct {
	Name        string
	Email       string
	UserType    models.UserType
	Institution string
	Country     string
	Field       string
	Rating      float64
}

// CreateUser registers a user. The user type defaults to researcher.
func (s *AdminService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	if input.UserType == "" {
		input.UserType = models.UserTypeResearcher
	}
	if !input.UserType.Valid() {
		return nil, ErrInvalidUserType
	}

	user := &models.User{
		Name:        input.Name,
		Email:       strings.TrimSpace(input.Email),
		UserType:    input.UserType,
		Institution: input.Institution,
		Country:     input.Country,
		Field:       input.Field,
		Rating:      input.Rating,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// CreateProblemInput represents input for registering a problem
type CreateProblemInput struct {
	Name        string
	Description string
	Severity    models.Severity
	CurrentWork string
	DoneWork    string
	Gaps        string
	SubfieldID  uint64
}

// CreateProblem registers a problem. Severity defaults to medium.
func (s *AdminService) CreateProblem(ctx context.Context, input CreateProblemInput) (*models.Problem, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	if input.Severity == "" {
		input.Severity = models.SeverityMedium
	}
	if !input.Severity.Valid() {
		return nil, ErrInvalidSeverity
	}

	problem := &models.Problem{
		Name:        input.Name,
		Description: input.Description,
		Severity:    input.Severity,
		CurrentWork: input.CurrentWork,
		DoneWork:    input.DoneWork,
		Gaps:        input.Gaps,
		SubfieldID:  input.SubfieldID,
	}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Catalog().FindSubfield(ctx, input.SubfieldID); err != nil {
			return lookupErr(err, ErrSubfieldNotFound, "subfield")
		}
		if err := tx.Catalog().CreateProblem(ctx, problem); err != nil {
			return fmt.Errorf("failed to create problem: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return problem, nil
}

// DeleteField removes a field with everything filed under it.
func (s *AdminService) DeleteField(ctx context.Context, name string) error {
	if err := s.store.Catalog().DeleteField(ctx, name); err != nil {
		return lookupErr(err, ErrFieldNotFound, "field")
	}
	return nil
}

// DeleteUser removes a user with their projects, posts, requests and memberships.
func (s *AdminService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.store.Users().Delete(ctx, id); err != nil {
		return lookupErr(err, ErrUserNotFound, "user")
	}
	return nil
}
