package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one gorm handle.
type Store struct {
	db       *gorm.DB
	users    UserRepository
	catalog  CatalogRepository
	projects ProjectRepository
	posts    PostRepository
	requests RequestRepository
}

// NewStore initializes every repository on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		users:    NewUserRepository(db),
		catalog:  NewCatalogRepository(db),
		projects: NewProjectRepository(db),
		posts:    NewPostRepository(db),
		requests: NewRequestRepository(db),
	}
}

func (s *Store) Users() UserRepository {
	return s.users
}

func (s *Store) Catalog() CatalogRepository {
	return s.catalog
}

func (s *Store) Projects() ProjectRepository {
	return s.projects
}

func (s *Store) Posts() PostRepository {
	return s.posts
}

func (s *Store) Requests() RequestRepository {
	return s.requests
}

// DB exposes the underlying handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn with a Store bound to a single transaction.
// The transaction is rolled back when fn returns an error.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
