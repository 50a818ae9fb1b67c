package show

import "context"

// Repository is the persistence boundary for shows. Per-venue and per-artist
// show listings live with their owning repositories.
type Repository interface {
	// List returns every show with both sides expanded, ordered by start
	// time ascending.
	List(ctx context.Context) ([]Entry, error)

	// Create inserts the show and fills in its generated fields.
	Create(ctx context.Context, s *Show) error
}
