package venue

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/vuphamle/playbill/internal/platform/apperr"
	"github.com/vuphamle/playbill/internal/platform/render"
	requestutil "github.com/vuphamle/playbill/internal/platform/request"
	"github.com/vuphamle/playbill/internal/platform/respond"
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

	router.Get("/", handler.browse)
	router.Post("/search", handler.search)
	router.Get("/create", handler.createForm)
	router.Post("/create", handler.create)
	router.Get("/{id}", handler.detail)
	router.Delete("/{id}", handler.delete)
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
	Venue  *Venue
	Genres string
}

func (handler *Handler) browse(writer http.ResponseWriter, request *http.Request) {
	groups, err := handler.service.Browse(request.Context())
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}
	handler.pages.Page(writer, request, "venues.html", groups)
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

	handler.pages.Page(writer, request, "search_venues.html", searchPage{SearchTerm: term, Results: results})
}

func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, "id")
	if !ok {
		handler.pages.Error(writer, request, apperr.NotFound("Venue"))
		return
	}

	detail, err := handler.service.Get(request.Context(), id)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	handler.pages.Page(writer, request, "venue_detail.html", detail)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.pages.Page(writer, request, "venue_form.html", formPage{
		Action: "/venues/create",
		Venue:  &Venue{},
	})
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.DecodeForm(request)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	v := venueFromForm(form)
	if err := handler.service.Create(request.Context(), v); err != nil {
		handler.flashes.Add(writer, request, "An error occurred. Venue "+v.Name+" could not be listed.")
		http.Redirect(writer, request, "/", http.StatusSeeOther)
		return
	}

	handler.flashes.Add(writer, request, "Venue "+v.Name+" was successfully listed!")
	http.Redirect(writer, request, "/", http.StatusSeeOther)
}

func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, "id")
	if !ok {
		handler.pages.Error(writer, request, apperr.NotFound("Venue"))
		return
	}

	v, err := handler.service.Find(request.Context(), id)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	handler.pages.Page(writer, request, "venue_form.html", formPage{
		Action: fmt.Sprintf("/venues/%d/edit", id),
		Venue:  v,
		Genres: genre.Join(v.Genres),
	})
}

func (handler *Handler) edit(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, "id")
	if !ok {
		handler.pages.Error(writer, request, apperr.NotFound("Venue"))
		return
	}

	form, err := requestutil.DecodeForm(request)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	v := venueFromForm(form)
	if err := handler.service.Update(request.Context(), id, v); err != nil {
		if apperr.IsNotFound(err) {
			handler.pages.Error(writer, request, err)
			return
		}
		handler.flashes.Add(writer, request, "An error occurred. Venue "+v.Name+" could not be updated.")
		http.Redirect(writer, request, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
		return
	}

	handler.flashes.Add(writer, request, "Venue "+v.Name+" was successfully updated!")
	http.Redirect(writer, request, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

// delete serves the script-driven delete button, so it answers in JSON
// rather than with a page.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, "id")
	if !ok {
		respond.JSON(writer, http.StatusNotFound, apperr.NotFound("Venue"))
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		ae := apperr.As(err)
		if ae == nil {
			ae = apperr.Internal(err)
		}
		respond.JSON(writer, ae.HTTPStatus, ae)
		return
	}

	respond.NoContent(writer)
}

// venueFromForm binds the submitted fields to a Venue. Every mutable field
// is always assigned; an omitted field becomes its zero value.
func venueFromForm(form url.Values) *Venue {
	return &Venue{
		Name:               form.Get(FieldName),
		Genres:             genre.Flatten(form[FieldGenres]),
		City:               form.Get(FieldCity),
		State:              form.Get(FieldState),
		Address:            form.Get(FieldAddress),
		Phone:              form.Get(FieldPhone),
		ImageLink:          form.Get(FieldImageLink),
		FacebookLink:       form.Get(FieldFacebook),
		Website:            form.Get(FieldWebsite),
		SeekingTalent:      requestutil.FormBool(form, "seeking_talent"),
		SeekingDescription: form.Get(FieldSeekingDesc),
	}
}
