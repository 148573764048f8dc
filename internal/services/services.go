package services

import "github.com/yukikurage/collabhub/internal/repository"

// Options tunes service behavior.
type Options struct {
	EnforceRequestReceiver bool
}

// Services bundles every service built on one Store.
type Services struct {
	Auth          *AuthService
	Feed          *FeedService
	Search        *SearchService
	Projects      *ProjectService
	Collaboration *CollaborationService
	Admin         *AdminService
}

// New wires the services on store.
func New(store *repository.Store, opts Options) *Services {
	return &Services{
		Auth:          NewAuthService(store.Users()),
		Feed:          NewFeedService(store),
		Search:        NewSearchService(store),
		Projects:      NewProjectService(store),
		Collaboration: NewCollaborationService(store, opts.EnforceRequestReceiver),
		Admin:         NewAdminService(store),
	}
}
