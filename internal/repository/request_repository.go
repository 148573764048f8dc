package repository

import (
	"context"

	"github.com/yukikurage/collabhub/internal/database"
	"github.com/yukikurage/collabhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRequestRepository is a GORM implementation of RequestRepository
type GormRequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &GormRequestRepository{db: db}
}

func (r *GormRequestRepository) Create(ctx context.Context, req *models.CollaborationRequest) error {
	return r.db.WithContext(ctx).Omit("Sender", "Receiver", "Project", "Post").Create(req).Error
}

func (r *GormRequestRepository) FindByID(ctx context.Context, id uint64) (*models.CollaborationRequest, error) {
	var req models.CollaborationRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// FindForUpdate finds a request with a row lock; SQLite ignores the locking clause
func (r *GormRequestRepository) FindForUpdate(ctx context.Context, id uint64) (*models.CollaborationRequest, error) {
	var req models.CollaborationRequest
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// FindExisting finds a request with the same sender, receiver and target in any status
func (r *GormRequestRepository) FindExisting(ctx context.Context, senderID, receiverID uint64, target models.RequestTarget) (*models.CollaborationRequest, error) {
	var req models.CollaborationRequest

	query := r.db.WithContext(ctx).Where("sender_id = ? AND receiver_id = ?", senderID, receiverID)
	switch target.Kind {
	case models.TargetProject:
		query = query.Where("project_id = ?", target.ID)
	case models.TargetPost:
		query = query.Where("post_id = ?", target.ID)
	default:
		return nil, models.ErrInvalidRequestTarget
	}

	if err := query.Order("id ASC").First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *GormRequestRepository) CountByReceiver(ctx context.Context, receiverID uint64, status models.RequestStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CollaborationRequest{}).
		Where("receiver_id = ? AND status = ?", receiverID, status).
		Count(&count).Error
	return count, err
}

func (r *GormRequestRepository) ListByReceiver(ctx context.Context, receiverID uint64, status models.RequestStatus) ([]models.CollaborationRequest, error) {
	var reqs []models.CollaborationRequest
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Project").
		Preload("Post").
		Where("receiver_id = ? AND status = ?", receiverID, status).
		Scopes(database.NewestFirst("collaboration_requests")).
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ResolvePending moves a pending request to status and reports whether a row changed
func (r *GormRequestRepository) ResolvePending(ctx context.Context, id uint64, status models.RequestStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CollaborationRequest{}).
		Where("id = ? AND status = ?", id, models.RequestStatusPending).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
