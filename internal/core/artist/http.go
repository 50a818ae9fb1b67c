package artist

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/vuphamle/playbill/internal/platform/apperr"
	"github.com/vuphamle/playbill/internal/platform/render"
	requestutil "github.com/vuphamle/playbill/internal/platform/request"
	"github.com/vuphamle/playbill/pkg/genre"
)

// Flashes queues one-shot messages shown on the browser's next page view.
type Flashes interface {
	Add(writer http.ResponseWriter, request *http.Request, message string)
}

type Handler struct {
	service *Service
	pages   *render.Renderer
	flashes Flashes
}

func NewHandler(service *Service, pages *render.Renderer, flashes Flashes) *Handler {
	return &Handler{service: service, pages: pages, flashes: flashes}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/search", handler.search)
	router.Get("/create", handler.createForm)
	router.Post("/create", handler.create)
	router.Get("/{id}", handler.detail)
	router.Get("/{id}/edit", handler.editForm)
	router.Post("/{id}/edit", handler.edit)

	return router
}

// searchPage is the payload of the search results template.
type searchPage struct {
	SearchTerm string
	Results    SearchResult
}

// formPage is the payload of the create/edit form template.
type formPage struct {
	Action string
	Artist *Artist
	Genres string
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	refs, err := handler.service.List(request.Context())
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}
	handler.pages.Page(writer, request, "artists.html", refs)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.DecodeForm(request)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	term := form.Get("search_term")
	results, err := handler.service.Search(request.Context(), term)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	handler.pages.Page(writer, request, "search_artists.html", searchPage{SearchTerm: term, Results: results})
}

func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, "id")
	if !ok {
		handler.pages.Error(writer, request, apperr.NotFound("Artist"))
		return
	}

	detail, err := handler.service.Get(request.Context(), id)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	handler.pages.Page(writer, request, "artist_detail.html", detail)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.pages.Page(writer, request, "artist_form.html", formPage{
		Action: "/artists/create",
		Artist: &Artist{},
	})
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.DecodeForm(request)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	a := artistFromForm(form)
	if err := handler.service.Create(request.Context(), a); err != nil {
		handler.flashes.Add(writer, request, "An error occurred. Artist "+a.Name+" could not be listed.")
		http.Redirect(writer, request, "/", http.StatusSeeOther)
		return
	}

	handler.flashes.Add(writer, request, "Artist "+a.Name+" was successfully listed!")
	http.Redirect(writer, request, "/", http.StatusSeeOther)
}

func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, "id")
	if !ok {
		handler.pages.Error(writer, request, apperr.NotFound("Artist"))
		return
	}

	a, err := handler.service.Find(request.Context(), id)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	handler.pages.Page(writer, request, "artist_form.html", formPage{
		Action: fmt.Sprintf("/artists/%d/edit", id),
		Artist: a,
		Genres: genre.Join(a.Genres),
	})
}

func (handler *Handler) edit(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, "id")
	if !ok {
		handler.pages.Error(writer, request, apperr.NotFound("Artist"))
		return
	}

	form, err := requestutil.DecodeForm(request)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	a := artistFromForm(form)
	if err := handler.service.Update(request.Context(), id, a); err != nil {
		if apperr.IsNotFound(err) {
			handler.pages.Error(writer, request, err)
			return
		}
		handler.flashes.Add(writer, request, "An error occurred. Artist "+a.Name+" could not be updated.")
		http.Redirect(writer, request, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
		return
	}

	handler.flashes.Add(writer, request, "Artist "+a.Name+" was successfully updated!")
	http.Redirect(writer, request, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}

// artistFromForm binds the submitted fields to an Artist. Every mutable field
// is always assigned; an omitted field becomes its zero value.
func artistFromForm(form url.Values) *Artist {
	return &Artist{
		Name:               form.Get(FieldName),
		Genres:             genre.Flatten(form[FieldGenres]),
		City:               form.Get(FieldCity),
		State:              form.Get(FieldState),
		Phone:              form.Get(FieldPhone),
		ImageLink:          form.Get(FieldImageLink),
		FacebookLink:       form.Get(FieldFacebook),
		Website:            form.Get(FieldWebsite),
		SeekingVenue:       requestutil.FormBool(form, "seeking_venue"),
		SeekingDescription: form.Get(FieldSeekingDesc),
	}
}
