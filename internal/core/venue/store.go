package venue

import (
	"context"
	"time"
)

// Repository is the persistence contract for venues and their show history.
//
// Queries that count upcoming shows take the reference time as an explicit
// parameter so callers control the clock.
type Repository interface {
	ListForBrowse(context context.Context, now time.Time) ([]BrowseRow, error)
	Search(context context.Context, term string, now time.Time) ([]Ref, error)
	Get(context context.Context, id int64) (*Venue, error)
	ShowsFor(context context.Context, id int64) ([]ShowEntry, error)
	Create(context context.Context, v *Venue) error
	Update(context context.Context, v *Venue) error
	Delete(context context.Context, id int64) error
}
