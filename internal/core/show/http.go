package show

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vuphamle/playbill/internal/platform/constants"
	"github.com/vuphamle/playbill/internal/platform/render"
	requestutil "github.com/vuphamle/playbill/internal/platform/request"
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
	router.Get("/create", handler.createForm)
	router.Post("/create", handler.create)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}
	handler.pages.Page(writer, request, "shows.html", items)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.pages.Page(writer, request, "show_form.html", nil)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.DecodeForm(request)
	if err != nil {
		handler.pages.Error(writer, request, err)
		return
	}

	s := showFromForm(form)
	if err := handler.service.Create(request.Context(), s); err != nil {
		handler.flashes.Add(writer, request, "An error occurred. Show could not be listed.")
		http.Redirect(writer, request, "/", http.StatusSeeOther)
		return
	}

	handler.flashes.Add(writer, request, "Show was successfully listed!")
	http.Redirect(writer, request, "/", http.StatusSeeOther)
}

// timeLayouts are tried in order when binding the start_time field. The
// plain form, RFC 3339, and the datetime-local widget format are all seen
// in submissions.
var timeLayouts = []string{
	constants.TimeDisplayFormat,
	time.RFC3339,
	"2006-01-02T15:04",
}

// showFromForm binds the submitted fields to a Show. Unparseable ids or
// timestamps become zero values and fail validation downstream.
func showFromForm(form url.Values) *Show {
	venueID, _ := strconv.ParseInt(form.Get(FieldVenueID), 10, 64)
	artistID, _ := strconv.ParseInt(form.Get(FieldArtistID), 10, 64)

	var start time.Time
	raw := form.Get(FieldStartTime)
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			start = parsed
			break
		}
	}

	return &Show{VenueID: venueID, ArtistID: artistID, StartTime: start}
}
