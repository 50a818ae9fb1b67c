package show

import (
	"context"
	"log/slog"

	"github.com/vuphamle/playbill/internal/platform/constants"
	"github.com/vuphamle/playbill/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns every show, ordered by start time ascending. No past/upcoming
// split here; the listing shows the full history.
func (service *Service) List(context context.Context) ([]ListItem, error) {
	entries, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	items := []ListItem{}
	for _, entry := range entries {
		items = append(items, ListItem{
			VenueID:         entry.VenueID,
			VenueName:       entry.VenueName,
			ArtistID:        entry.ArtistID,
			ArtistName:      entry.ArtistName,
			ArtistImageLink: entry.ArtistImageLink,
			StartTime:       entry.StartTime.Format(constants.TimeDisplayFormat),
		})
	}
	return items, nil
}

// Create books a show. Past start times are accepted; the listing carries
// history as well as upcoming bookings.
func (service *Service) Create(context context.Context, s *Show) error {
	validator := &validate.Validator{}
	validator.
		Positive(FieldVenueID, s.VenueID).
		Positive(FieldArtistID, s.ArtistID).
		Custom(FieldStartTime, s.StartTime.IsZero(), "This field is required")

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(context, s); err != nil {
		return err
	}

	service.logger.Info("show_created",
		slog.Int64("show_id", s.ID),
		slog.Int64("venue_id", s.VenueID),
		slog.Int64("artist_id", s.ArtistID),
		slog.Time("start_time", s.StartTime))
	return nil
}
