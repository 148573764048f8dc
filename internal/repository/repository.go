package repository

import (
	"context"

	"github.com/yukikurage/collabhub/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// ListAll lists every user ordered by name
	ListAll(ctx context.Context) ([]models.User, error)

	// ListResearchers lists researcher users matching the filter
	ListResearchers(ctx context.Context, filter ResearcherFilter) ([]models.User, error)

	// Delete deletes a user; owned rows cascade
	Delete(ctx context.Context, id uint64) error
}

// ResearcherFilter holds case-insensitive substring filters for researchers.
// Empty strings are ignored.
type ResearcherFilter struct {
	Field       string
	Country     string
	Institution string
	ExcludeID   uint64
}

// CatalogRepository defines data access for fields, subfields and problems
type CatalogRepository interface {
	CreateField(ctx context.Context, field *models.Field) error
	FindField(ctx context.Context, name string) (*models.Field, error)
	ListFields(ctx context.Context) ([]models.Field, error)
	DeleteField(ctx context.Context, name string) error

	CreateSubfield(ctx context.Context, sub *models.Subfield) error
	FindSubfield(ctx context.Context, id uint64) (*models.Subfield, error)
	// ListSubfields lists subfields of fieldName, or all subfields when fieldName is empty
	ListSubfields(ctx context.Context, fieldName string) ([]models.Subfield, error)

	CreateProblem(ctx context.Context, problem *models.Problem) error
	FindProblem(ctx context.Context, id uint64) (*models.Problem, error)
	// ListProblems lists problems ordered by severity
	ListProblems(ctx context.Context, filter ProblemFilter) ([]models.Problem, error)
}

// ProblemFilter selects problems by subfield, or by field when SubfieldID is nil.
type ProblemFilter struct {
	FieldName  string
	SubfieldID *uint64
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.Project, error)

	// ListByOwner lists projects owned by a user, newest first
	ListByOwner(ctx context.Context, ownerID uint64) ([]models.Project, error)

	// ListBySubfield lists projects in a subfield, newest first
	ListBySubfield(ctx context.Context, subfieldID uint64) ([]models.Project, error)

	// ListOwnersBySubfield lists distinct owners of projects in a subfield, by name
	ListOwnersBySubfield(ctx context.Context, subfieldID uint64) ([]models.User, error)

	// AddCollaborators adds members to a project; existing members are left as they are
	AddCollaborators(ctx context.Context, projectID uint64, userIDs []uint64) error

	// ListCollaboratorIDs lists the member IDs of a project
	ListCollaboratorIDs(ctx context.Context, projectID uint64) ([]uint64, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id uint64) (*models.Post, error)
	// ListFeed lists every post with its author, newest first
	ListFeed(ctx context.Context) ([]models.Post, error)
}

// RequestRepository defines the interface for collaboration request data access
type RequestRepository interface {
	Create(ctx context.Context, req *models.CollaborationRequest) error
	FindByID(ctx context.Context, id uint64) (*models.CollaborationRequest, error)

	// FindForUpdate finds a request and locks its row until the transaction ends
	FindForUpdate(ctx context.Context, id uint64) (*models.CollaborationRequest, error)

	// FindExisting finds a request with the same sender, receiver and target in any status
	FindExisting(ctx context.Context, senderID, receiverID uint64, target models.RequestTarget) (*models.CollaborationRequest, error)

	// CountByReceiver counts requests addressed to a user in a status
	CountByReceiver(ctx context.Context, receiverID uint64, status models.RequestStatus) (int64, error)

	// ListByReceiver lists requests addressed to a user in a status, newest first
	ListByReceiver(ctx context.Context, receiverID uint64, status models.RequestStatus) ([]models.CollaborationRequest, error)

	// ResolvePending moves a pending request to status and reports whether a row changed
	ResolvePending(ctx context.Context, id uint64, status models.RequestStatus) (bool, error)
}
