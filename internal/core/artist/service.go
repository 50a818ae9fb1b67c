package artist

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

// List returns every artist as a plain reference list, no grouping.
func (service *Service) List(context context.Context) ([]Ref, error) {
	artists, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	refs := []Ref{}
	for _, a := range artists {
		refs = append(refs, Ref{ID: a.ID, Name: a.Name})
	}
	return refs, nil
}

// Search matches artist names case-insensitively against term. An empty term
// matches every artist.
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

// Find fetches a bare artist without its show history (edit form prefill).
func (service *Service) Find(context context.Context, id int64) (*Artist, error) {
	return service.repo.Get(context, id)
}

// Get fetches an artist expanded with its shows partitioned strictly around
// the reference clock: start > now is upcoming, start < now is past.
func (service *Service) Get(context context.Context, id int64) (*Detail, error) {
	a, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	entries, err := service.repo.ShowsFor(context, id)
	if err != nil {
		return nil, err
	}

	now := service.now()
	detail := &Detail{
		Artist:        *a,
		PastShows:     []ShowSummary{},
		UpcomingShows: []ShowSummary{},
	}

	for _, entry := range entries {
		summary := ShowSummary{
			VenueID:        entry.VenueID,
			VenueName:      entry.VenueName,
			VenueImageLink: entry.VenueImageLink,
			StartTime:      entry.StartTime.Format(constants.TimeDisplayFormat),
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

func (service *Service) Create(context context.Context, a *Artist) error {
	if err := service.validate(a); err != nil {
		return err
	}

	if err := service.repo.Create(context, a); err != nil {
		return err
	}

	service.logger.Info("artist_created", slog.Int64("artist_id", a.ID), slog.String("name", a.Name))
	return nil
}

// Update overwrites every mutable field with the submitted values
// (full-replace, never a partial patch).
func (service *Service) Update(context context.Context, id int64, a *Artist) error {
	a.ID = id
	if err := service.validate(a); err != nil {
		return err
	}

	if err := service.repo.Update(context, a); err != nil {
		return err
	}

	service.logger.Info("artist_updated", slog.Int64("artist_id", a.ID))
	return nil
}

func (service *Service) validate(a *Artist) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, a.Name).MaxLen(FieldName, a.Name, 120).
		MaxLen(FieldCity, a.City, 120).
		MaxLen(FieldState, a.State, 120).
		Phone(FieldPhone, a.Phone).
		URL(FieldImageLink, a.ImageLink).
		URL(FieldFacebook, a.FacebookLink).
		URL(FieldWebsite, a.Website).
		MaxLen(FieldSeekingDesc, a.SeekingDescription, 500)

	return validator.Err()
}
