package venue

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuphamle/playbill/internal/platform/apperr"
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
	service := newTestService(repo, time.Now())
	return NewHandler(service, pages, flashes), flashes
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_Detail_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeRepository{getErr: apperr.NotFound("Venue")})
	router := handler.Routes()

	request := httptest.NewRequest(http.MethodGet, "/999", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "404")
}

func TestHandler_Detail_BadID(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeRepository{})
	router := handler.Routes()

	request := httptest.NewRequest(http.MethodGet, "/abc", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_Create(t *testing.T) {
	repo := &fakeRepository{}
	handler, flashes := newTestHandler(t, repo)
	router := handler.Routes()

	form := url.Values{}
	form.Set("name", "The Fillmore")
	form.Add("genres", "Rock")
	form.Add("genres", "Folk")
	form.Set("city", "San Francisco")
	form.Set("state", "CA")
	form.Set("address", "1805 Geary Blvd")
	form.Set("seeking_talent", "y")
	form.Set("seeking_description", "Looking for openers")

	recorder := postForm(router, "/create", form)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))

	require.NotNil(t, repo.created)
	assert.Equal(t, []string{"Rock", "Folk"}, repo.created.Genres)
	assert.True(t, repo.created.SeekingTalent)

	require.Len(t, flashes.messages, 1)
	assert.Equal(t, "Venue The Fillmore was successfully listed!", flashes.messages[0])
}

func TestHandler_Create_ValidationFailure(t *testing.T) {
	repo := &fakeRepository{}
	handler, flashes := newTestHandler(t, repo)
	router := handler.Routes()

	// Missing name: still redirects, but with the failure flash.
	recorder := postForm(router, "/create", url.Values{"city": {"Oakland"}})

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Nil(t, repo.created)
	require.Len(t, flashes.messages, 1)
	assert.Contains(t, flashes.messages[0], "could not be listed")
}

/*
TestHandler_Edit_FullReplace checks that an edit form omitting a field wipes
the stored value rather than keeping it.
*/
func TestHandler_Edit_FullReplace(t *testing.T) {
	repo := &fakeRepository{venue: &Venue{ID: 7, Name: "The Fillmore", Phone: "415-555-0132"}}
	handler, flashes := newTestHandler(t, repo)
	router := handler.Routes()

	form := url.Values{}
	form.Set("name", "The Fillmore")
	// phone omitted on purpose

	recorder := postForm(router, "/7/edit", form)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/venues/7", recorder.Header().Get("Location"))

	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(7), repo.updated.ID)
	assert.Empty(t, repo.updated.Phone)

	require.Len(t, flashes.messages, 1)
	assert.Equal(t, "Venue The Fillmore was successfully updated!", flashes.messages[0])
}

func TestHandler_Delete(t *testing.T) {
	repo := &fakeRepository{}
	handler, _ := newTestHandler(t, repo)
	router := handler.Routes()

	request := httptest.NewRequest(http.MethodDelete, "/7", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, int64(7), repo.deleted)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	repo := &fakeRepository{deleteErr: apperr.NotFound("Venue")}
	handler, _ := newTestHandler(t, repo)
	router := handler.Routes()

	request := httptest.NewRequest(http.MethodDelete, "/999", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
