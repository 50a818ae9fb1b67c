package artist

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
	artists []*Artist
	refs    []Ref
	artist  *Artist
	entries []ShowEntry
	getErr  error

	created *Artist
	updated *Artist
}

func (f *fakeRepository) List(_ context.Context) ([]*Artist, error) {
	return f.artists, nil
}

func (f *fakeRepository) Search(_ context.Context, _ string, _ time.Time) ([]Ref, error) {
	return f.refs, nil
}

func (f *fakeRepository) Get(_ context.Context, _ int64) (*Artist, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.artist, nil
}

func (f *fakeRepository) ShowsFor(_ context.Context, _ int64) ([]ShowEntry, error) {
	return f.entries, nil
}

func (f *fakeRepository) Create(_ context.Context, a *Artist) error {
	a.ID = 1
	f.created = a
	return nil
}

func (f *fakeRepository) Update(_ context.Context, a *Artist) error {
	f.updated = a
	return nil
}

func newTestService(repo Repository, clock time.Time) *Service {
	service := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	service.now = func() time.Time { return clock }
	return service
}

func TestService_List(t *testing.T) {
	repo := &fakeRepository{artists: []*Artist{
		{ID: 2, Name: "Beach House"},
		{ID: 1, Name: "Grateful Dead"},
	}}
	service := newTestService(repo, time.Now())

	refs, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, Ref{ID: 2, Name: "Beach House"}, refs[0])
}

func TestService_List_Empty(t *testing.T) {
	service := newTestService(&fakeRepository{}, time.Now())

	refs, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, refs)
	assert.Empty(t, refs)
}

func TestService_Search_Empty(t *testing.T) {
	service := newTestService(&fakeRepository{}, time.Now())

	result, err := service.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Data)
}

/*
TestService_Get_Partition checks the strict split of the artist's bookings
around the injected clock, on the venue side of the join.
*/
func TestService_Get_Partition(t *testing.T) {
	clock := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepository{
		artist: &Artist{ID: 3, Name: "Grateful Dead"},
		entries: []ShowEntry{
			{VenueID: 7, VenueName: "The Fillmore", StartTime: clock.Add(-72 * time.Hour)},
			{VenueID: 8, VenueName: "Red Rocks", StartTime: clock.Add(72 * time.Hour)},
		},
	}
	service := newTestService(repo, clock)

	detail, err := service.Get(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, detail.PastShows, 1)
	assert.Equal(t, "The Fillmore", detail.PastShows[0].VenueName)
	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, "Red Rocks", detail.UpcomingShows[0].VenueName)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := &fakeRepository{getErr: apperr.NotFound("Artist")}
	service := newTestService(repo, time.Now())

	_, err := service.Get(context.Background(), 404)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_Create(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newTestService(repo, time.Now())

		a := &Artist{Name: "Grateful Dead", Genres: []string{"Rock"}, SeekingVenue: true}
		require.NoError(t, service.Create(context.Background(), a))
		require.NotNil(t, repo.created)
		assert.Equal(t, int64(1), a.ID)
	})

	t.Run("missing_name", func(t *testing.T) {
		repo := &fakeRepository{}
		service := newTestService(repo, time.Now())

		err := service.Create(context.Background(), &Artist{City: "San Francisco"})
		require.Error(t, err)
		assert.Nil(t, repo.created)
	})
}

func TestService_Update_FullReplace(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo, time.Now())

	a := &Artist{Name: "Grateful Dead"}
	require.NoError(t, service.Update(context.Background(), 3, a))

	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(3), repo.updated.ID)
	assert.Empty(t, repo.updated.Phone)
	assert.False(t, repo.updated.SeekingVenue)
}
