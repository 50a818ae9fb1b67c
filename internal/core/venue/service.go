package venue

import (
	"context"
	"log/slog"
	"time"

	"github.com/vuphamle/playbill/internal/platform/constants"
	"github.com/vuphamle/playbill/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger

	// now is the reference clock for the upcoming/past boundary.
	now func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Browse returns every venue grouped by exact (city, state) pair, each venue
// annotated with its live upcoming-show count.
func (service *Service) Browse(context context.Context) ([]CityGroup, error) {
	rows, err := service.repo.ListForBrowse(context, service.now())
	if err != nil {
		return nil, err
	}

	// Rows arrive ordered by (city, state), so equal pairs are consecutive.
	groups := []CityGroup{}
	for _, row := range rows {
		last := len(groups) - 1
		if last < 0 || groups[last].City != row.City || groups[last].State != row.State {
			groups = append(groups, CityGroup{City: row.City, State: row.State})
			last++
		}
		groups[last].Venues = append(groups[last].Venues, row.Venue)
	}

	return groups, nil
}

// Search matches venue names case-insensitively against term. An empty term
// matches every venue.
func (service *Service) Search(context context.Context, term string) (SearchResult, error) {
	refs, err := service.repo.Search(context, term, service.now())
	if err != nil {
		return SearchResult{}, err
	}
	if refs == nil {
		refs = []Ref{}
	}
	return SearchResult{Count: len(refs), Data: refs}, nil
}

// Find fetches a bare venue without its show history (edit form prefill).
func (service *Service) Find(context context.Context, id int64) (*Venue, error) {
	return service.repo.Get(context, id)
}

// Get fetches a venue expanded with its shows partitioned strictly around
// the reference clock: start > now is upcoming, start < now is past.
func (service *Service) Get(context context.Context, id int64) (*Detail, error) {
	v, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	entries, err := service.repo.ShowsFor(context, id)
	if err != nil {
		return nil, err
	}

	now := service.now()
	detail := &Detail{
		Venue:         *v,
		PastShows:     []ShowSummary{},
		UpcomingShows: []ShowSummary{},
	}

	for _, entry := range entries {
		summary := ShowSummary{
			ArtistID:        entry.ArtistID,
			ArtistName:      entry.ArtistName,
			ArtistImageLink: entry.ArtistImageLink,
			StartTime:       entry.StartTime.Format(constants.TimeDisplayFormat),
		}
		switch {
		case entry.StartTime.After(now):
			detail.UpcomingShows = append(detail.UpcomingShows, summary)
		case entry.StartTime.Before(now):
			detail.PastShows = append(detail.PastShows, summary)
		}
	}

	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

func (service *Service) Create(context context.Context, v *Venue) error {
	if err := service.validate(v); err != nil {
		return err
	}

	if err := service.repo.Create(context, v); err != nil {
		return err
	}

	service.logger.Info("venue_created", slog.Int64("venue_id", v.ID), slog.String("name", v.Name))
	return nil
}

// Update overwrites every mutable field with the submitted values
// (full-replace, never a partial patch).
func (service *Service) Update(context context.Context, id int64, v *Venue) error {
	v.ID = id
	if err := service.validate(v); err != nil {
		return err
	}

	if err := service.repo.Update(context, v); err != nil {
		return err
	}

	service.logger.Info("venue_updated", slog.Int64("venue_id", v.ID))
	return nil
}

// Delete removes the venue and all of its shows.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("venue_deleted", slog.Int64("venue_id", id))
	return nil
}

func (service *Service) validate(v *Venue) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, v.Name).MaxLen(FieldName, v.Name, 120).
		MaxLen(FieldCity, v.City, 120).
		MaxLen(FieldState, v.State, 120).
		MaxLen(FieldAddress, v.Address, 120).
		Phone(FieldPhone, v.Phone).
		URL(FieldImageLink, v.ImageLink).
		URL(FieldFacebook, v.FacebookLink).
		URL(FieldWebsite, v.Website).
		MaxLen(FieldSeekingDesc, v.SeekingDescription, 500)

	return validator.Err()
}
