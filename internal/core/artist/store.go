package artist

import (
	"context"
	"time"
)

// Repository is the persistence contract for artists and their show history.
type Repository interface {
	List(context context.Context) ([]*Artist, error)
	Search(context context.Context, term string, now time.Time) ([]Ref, error)
	Get(context context.Context, id int64) (*Artist, error)
	ShowsFor(context context.Context, id int64) ([]ShowEntry, error)
	Create(context context.Context, a *Artist) error
	Update(context context.Context, a *Artist) error
}
