package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/repository"
)

// FeedService serves the post feed.
type FeedService struct {
	store *repository.Store
}

func NewFeedService(store *repository.Store) *FeedService {
	return &FeedService{store: store}
}

// ListFeed returns every post with its author, newest first.
func (s *FeedService) ListFeed(ctx context.Context) ([]models.Post, error) {
	posts, err := s.store.Posts().ListFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// CountPendingRequests counts pending requests addressed to userID.
func (s *FeedService) CountPendingRequests(ctx context.Context, userID uint64) (int64, error) {
	count, err := s.store.Requests().CountByReceiver(ctx, userID, models.RequestStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending requests: %w", err)
	}
	return count, nil
}

// CreatePost publishes a post. Empty content is accepted.
func (s *FeedService) CreatePost(ctx context.Context, authorID uint64, content string) (*models.Post, error) {
	post := &models.Post{
		Content:  content,
		AuthorID: authorID,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Users().FindByID(ctx, authorID); err != nil {
			return lookupErr(err, ErrUserNotFound, "author")
		}
		if err := tx.Posts().Create(ctx, post); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}
