package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/repository"
	"gorm.io/gorm"
)

// CollaborationService manages collaboration requests and their accept/reject workflow.
type CollaborationService struct {
	store           *repository.Store
	enforceReceiver bool
}

// NewCollaborationService creates a new CollaborationService. When enforceReceiver is set only
// the receiver of a request may accept or reject it.
func NewCollaborationService(store *repository.Store, enforceReceiver bool) *CollaborationService {
	return &CollaborationService{
		store:           store,
		enforceReceiver: enforceReceiver,
	}
}

// RequestOutcome describes what a collaboration request command did.
// Skipped is set for self-requests and for requests that already exist.
type RequestOutcome struct {
	Request    *models.CollaborationRequest
	ReceiverID uint64
	Skipped    bool
}

// RequestPostCollaboration asks the author of a post to collaborate.
func (s *CollaborationService) RequestPostCollaboration(ctx context.Context, senderID, postID uint64) (*RequestOutcome, error) {
	return s.request(ctx, senderID, models.PostTarget(postID), func(tx *repository.Store) (uint64, error) {
		post, err := tx.Posts().FindByID(ctx, postID)
		if err != nil {
			return 0, lookupErr(err, ErrPostNotFound, "post")
		}
		return post.AuthorID, nil
	})
}

// RequestProjectCollaboration asks the owner of a project to collaborate.
func (s *CollaborationService) RequestProjectCollaboration(ctx context.Context, senderID, projectID uint64) (*RequestOutcome, error) {
	return s.request(ctx, senderID, models.ProjectTarget(projectID), func(tx *repository.Store) (uint64, error) {
		project, err := tx.Projects().FindByID(ctx, projectID)
		if err != nil {
			return 0, lookupErr(err, ErrProjectNotFound, "project")
		}
		return project.OwnerID, nil
	})
}

func (s *CollaborationService) request(
	ctx context.Context,
	senderID uint64,
	target models.RequestTarget,
	receiverOf func(tx *repository.Store) (uint64, error),
) (*RequestOutcome, error) {
	outcome := &RequestOutcome{}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		receiverID, err := receiverOf(tx)
		if err != nil {
			return err
		}
		outcome.ReceiverID = receiverID

		if _, err := tx.Users().FindByID(ctx, senderID); err != nil {
			return lookupErr(err, ErrUserNotFound, "sender")
		}

		if senderID == receiverID {
			outcome.Skipped = true
			return nil
		}

		existing, err := tx.Requests().FindExisting(ctx, senderID, receiverID, target)
		if err == nil {
			outcome.Request = existing
			outcome.Skipped = true
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing request: %w", err)
		}

		req := &models.CollaborationRequest{
			SenderID:   senderID,
			ReceiverID: receiverID,
			Status:     models.RequestStatusPending,
		}
		req.SetTarget(target)
		if err := tx.Requests().Create(ctx, req); err != nil {
			return fmt.Errorf("failed to create collaboration request: %w", err)
		}
		outcome.Request = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !outcome.Skipped {
		log.Ctx(ctx).Info().
			Uint64("sender_id", senderID).
			Uint64("receiver_id", outcome.ReceiverID).
			Str("target", string(target.Kind)).
			Uint64("target_id", target.ID).
			Msg("Collaboration request sent")
	}

	return outcome, nil
}

// Notifications groups the requests addressed to a user by status.
type Notifications struct {
	Pending  []models.CollaborationRequest
	Accepted []models.CollaborationRequest
	Rejected []models.CollaborationRequest
}

// ListNotifications lists requests received by userID, newest first in each bucket.
func (s *CollaborationService) ListNotifications(ctx context.Context, userID uint64) (*Notifications, error) {
	buckets := make(map[models.RequestStatus][]models.CollaborationRequest, 3)
	for _, status := range []models.RequestStatus{
		models.RequestStatusPending,
		models.RequestStatusAccepted,
		models.RequestStatusRejected,
	} {
		reqs, err := s.store.Requests().ListByReceiver(ctx, userID, status)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s requests: %w", status, err)
		}
		buckets[status] = reqs
	}

	return &Notifications{
		Pending:  buckets[models.RequestStatusPending],
		Accepted: buckets[models.RequestStatusAccepted],
		Rejected: buckets[models.RequestStatusRejected],
	}, nil
}

// AcceptRequest accepts a request. A project request makes the sender a collaborator.
// Accepting an accepted request succeeds without changes.
func (s *CollaborationService) AcceptRequest(ctx context.Context, actorID, requestID uint64) (*models.CollaborationRequest, error) {
	return s.resolve(ctx, actorID, requestID, models.RequestStatusAccepted)
}

// RejectRequest rejects a request. Membership is never touched.
func (s *CollaborationService) RejectRequest(ctx context.Context, actorID, requestID uint64) (*models.CollaborationRequest, error) {
	return s.resolve(ctx, actorID, requestID, models.RequestStatusRejected)
}

func (s *CollaborationService) resolve(ctx context.Context, actorID, requestID uint64, status models.RequestStatus) (*models.CollaborationRequest, error) {
	var req *models.CollaborationRequest

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		req, err = tx.Requests().FindForUpdate(ctx, requestID)
		if err != nil {
			return lookupErr(err, ErrRequestNotFound, "collaboration request")
		}

		if s.enforceReceiver && req.ReceiverID != actorID {
			return ErrNotRequestReceiver
		}

		if !req.Status.Terminal() {
			changed, err := tx.Requests().ResolvePending(ctx, requestID, status)
			if err != nil {
				return fmt.Errorf("failed to update collaboration request: %w", err)
			}
			if changed {
				req.Status = status
			} else if req, err = tx.Requests().FindByID(ctx, requestID); err != nil {
				return lookupErr(err, ErrRequestNotFound, "collaboration request")
			}
		}

		if req.Status != status {
			return ErrRequestAlreadyResolved
		}

		if status == models.RequestStatusAccepted && req.ProjectID != nil {
			if err := tx.Projects().AddCollaborators(ctx, *req.ProjectID, []uint64{req.SenderID}); err != nil {
				return fmt.Errorf("failed to add collaborator: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Uint64("request_id", requestID).
		Str("status", string(status)).
		Msg("Collaboration request resolved")

	return req, nil
}
