package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/repository"
)

// ProjectService handles project business logic
type ProjectService struct {
	store *repository.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *repository.Store) *ProjectService {
	return &ProjectService{store: store}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	OwnerID         uint64
	Title           string
	Description     string
	FieldName       string
	SubfieldID      uint64
	VacancyStatus   bool
	CollaboratorIDs []uint64
}

// CreateProject creates a project and adds its initial collaborators.
// The subfield is not checked against the field.
func (s *ProjectService) CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	project := &models.Project{
		Title:         input.Title,
		Description:   input.Description,
		VacancyStatus: input.VacancyStatus,
		OwnerID:       input.OwnerID,
		FieldName:     input.FieldName,
		SubfieldID:    input.SubfieldID,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Catalog().FindField(ctx, input.FieldName); err != nil {
			return lookupErr(err, ErrFieldNotFound, "field")
		}
		if _, err := tx.Catalog().FindSubfield(ctx, input.SubfieldID); err != nil {
			return lookupErr(err, ErrSubfieldNotFound, "subfield")
		}
		if _, err := tx.Users().FindByID(ctx, input.OwnerID); err != nil {
			return lookupErr(err, ErrUserNotFound, "owner")
		}

		if err := tx.Projects().Create(ctx, project); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		for _, userID := range input.CollaboratorIDs {
			if _, err := tx.Users().FindByID(ctx, userID); err != nil {
				return lookupErr(err, ErrUserNotFound, "collaborator")
			}
			if err := tx.Projects().AddCollaborators(ctx, project.ID, []uint64{userID}); err != nil {
				return fmt.Errorf("failed to add collaborator: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// GetProject returns a project by ID
func (s *ProjectService) GetProject(ctx context.Context, projectID uint64) (*models.Project, error) {
	project, err := s.store.Projects().FindByID(ctx, projectID)
	if err != nil {
		return nil, lookupErr(err, ErrProjectNotFound, "project")
	}
	return project, nil
}

// Profile is a user with the projects they own.
type Profile struct {
	User     *models.User
	Projects []models.Project
}

// GetProfile loads a user and their projects, newest first.
func (s *ProjectService) GetProfile(ctx context.Context, userID uint64) (*Profile, error) {
	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, ErrUserNotFound, "user")
	}

	projects, err := s.store.Projects().ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &Profile{User: user, Projects: projects}, nil
}

// ProjectFormOptions holds the choices offered by the create-project form.
type ProjectFormOptions struct {
	Fields      []models.Field
	Subfields   []models.Subfield
	Researchers []models.User
}

// FormOptions lists fields, subfields and the researchers actorID could invite.
func (s *ProjectService) FormOptions(ctx context.Context, actorID uint64) (*ProjectFormOptions, error) {
	fields, err := s.store.Catalog().ListFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}

	subfields, err := s.store.Catalog().ListSubfields(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list subfields: %w", err)
	}

	researchers, err := s.store.Users().ListResearchers(ctx, repository.ResearcherFilter{ExcludeID: actorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list researchers: %w", err)
	}

	return &ProjectFormOptions{
		Fields:      fields,
		Subfields:   subfields,
		Researchers: researchers,
	}, nil
}
