package show

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuphamle/playbill/internal/platform/apperr"
)

// fakeRepository is an in-memory Repository double.
type fakeRepository struct {
	entries   []Entry
	createErr error

	created *Show
}

func (f *fakeRepository) List(_ context.Context) ([]Entry, error) {
	return f.entries, nil
}

func (f *fakeRepository) Create(_ context.Context, s *Show) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = 1
	f.created = s
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_List(t *testing.T) {
	start := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	repo := &fakeRepository{entries: []Entry{
		{VenueID: 7, VenueName: "The Fillmore", ArtistID: 3, ArtistName: "Grateful Dead", StartTime: start},
	}}
	service := newTestService(repo)

	items, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "The Fillmore", items[0].VenueName)
	assert.Equal(t, "Grateful Dead", items[0].ArtistName)
	assert.Equal(t, "2026-06-01 20:00:00", items[0].StartTime)
}

func TestService_List_Empty(t *testing.T) {
	service := newTestService(&fakeRepository{})

	items, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestService_Create(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newTestService(repo)

		s := &Show{VenueID: 7, ArtistID: 3, StartTime: time.Date(2035, 6, 1, 20, 0, 0, 0, time.UTC)}
		require.NoError(t, service.Create(context.Background(), s))
		require.NotNil(t, repo.created)
		assert.Equal(t, int64(1), s.ID)
	})

	t.Run("past_start_time_allowed", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newTestService(repo)

		s := &Show{VenueID: 7, ArtistID: 3, StartTime: time.Date(1990, 1, 1, 20, 0, 0, 0, time.UTC)}
		assert.NoError(t, service.Create(context.Background(), s))
	})

	t.Run("missing_ids", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newTestService(repo)

		err := service.Create(context.Background(), &Show{StartTime: time.Now()})
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Len(t, ae.Details, 2)
		assert.Nil(t, repo.created)
	})

	t.Run("zero_start_time", func(t *testing.T) {
		service := newTestService(&fakeRepository{})

		err := service.Create(context.Background(), &Show{VenueID: 7, ArtistID: 3})
		require.Error(t, err)
	})

	t.Run("unknown_reference", func(t *testing.T) {
		repo := &fakeRepository{createErr: apperr.ValidationError("Referenced record does not exist")}
		service := newTestService(repo)

		err := service.Create(context.Background(), &Show{VenueID: 999, ArtistID: 3, StartTime: time.Now()})
		require.Error(t, err)
	})
}
