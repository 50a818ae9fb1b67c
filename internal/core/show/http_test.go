package show

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuphamle/playbill/internal/platform/render"
	"github.com/vuphamle/playbill/web"
)

// fakeFlashes records queued messages instead of touching Redis.
type fakeFlashes struct {
	messages []string
}

func (f *fakeFlashes) Add(_ http.ResponseWriter, _ *http.Request, message string) {
	f.messages = append(f.messages, message)
}

func newTestHandler(t *testing.T, repo Repository) (*Handler, *fakeFlashes) {
	t.Helper()

	pages, err := render.New(web.Templates, nil)
	require.NoError(t, err)

	flashes := &fakeFlashes{}
	return NewHandler(newTestService(repo), pages, flashes), flashes
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Create checks that the booking binds venue and artist from their
own form fields and redirects home with the success flash.
*/
func TestHandler_Create(t *testing.T) {
	repo := &fakeRepository{}
	handler, flashes := newTestHandler(t, repo)
	router := handler.Routes()

	form := url.Values{}
	form.Set("venue_id", "7")
	form.Set("artist_id", "3")
	form.Set("start_time", "2035-06-01 20:00:00")

	recorder := postForm(router, "/create", form)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))

	require.NotNil(t, repo.created)
	assert.Equal(t, int64(7), repo.created.VenueID)
	assert.Equal(t, int64(3), repo.created.ArtistID)
	assert.Equal(t, time.Date(2035, 6, 1, 20, 0, 0, 0, time.UTC), repo.created.StartTime)

	require.Len(t, flashes.messages, 1)
	assert.Equal(t, "Show was successfully listed!", flashes.messages[0])
}

func TestHandler_Create_TimeLayouts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain", "2035-06-01 20:00:00"},
		{"rfc3339", "2035-06-01T20:00:00Z"},
		{"datetime_local", "2035-06-01T20:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			handler, _ := newTestHandler(t, repo)

			form := url.Values{}
			form.Set("venue_id", "7")
			form.Set("artist_id", "3")
			form.Set("start_time", tt.raw)

			postForm(handler.Routes(), "/create", form)

			require.NotNil(t, repo.created)
			assert.Equal(t, 2035, repo.created.StartTime.Year())
			assert.Equal(t, 20, repo.created.StartTime.Hour())
		})
	}
}

func TestHandler_Create_BadInput(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"unparseable_time", url.Values{"venue_id": {"7"}, "artist_id": {"3"}, "start_time": {"tonight"}}},
		{"non_numeric_artist", url.Values{"venue_id": {"7"}, "artist_id": {"the dead"}, "start_time": {"2035-06-01 20:00:00"}}},
		{"missing_venue", url.Values{"artist_id": {"3"}, "start_time": {"2035-06-01 20:00:00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			handler, flashes := newTestHandler(t, repo)

			recorder := postForm(handler.Routes(), "/create", tt.form)

			assert.Equal(t, http.StatusSeeOther, recorder.Code)
			assert.Nil(t, repo.created)
			require.Len(t, flashes.messages, 1)
			assert.Equal(t, "An error occurred. Show could not be listed.", flashes.messages[0])
		})
	}
}

func TestHandler_List(t *testing.T) {
	repo := &fakeRepository{entries: []Entry{
		{VenueID: 7, VenueName: "The Fillmore", ArtistID: 3, ArtistName: "Grateful Dead",
			StartTime: time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)},
	}}
	handler, _ := newTestHandler(t, repo)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Grateful Dead")
	assert.Contains(t, body, "The Fillmore")
	assert.Contains(t, body, "2026-06-01 20:00:00")
}
