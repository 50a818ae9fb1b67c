// Copyright (c) 2026 Playbill. All rights reserved.
// Author: vu.phamle.vn@gmail.com

/*
Package render executes the embedded HTML templates behind every page response.

It is the server-rendered counterpart of a JSON respond layer: handlers hand
over a template name and a data payload, and this package is responsible for
the envelope around it (pending flash messages, error pages, content type,
write-once semantics).

Pages are rendered into a buffer first so a template failure can still become
a clean 500 response instead of a half-written body.
*/
package render

import (
	"bytes"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/vuphamle/playbill/internal/platform/apperr"
	"github.com/vuphamle/playbill/internal/platform/ctxutil"
)

// Flashes drains pending one-shot messages for the requesting browser.
// Satisfied by the flash package's Redis-backed store.
type Flashes interface {
	Pop(request *http.Request) []string
}

// PageData is the envelope handed to every page template.
type PageData struct {
	// Flash holds one-shot messages queued by a previous request.
	Flash []string
	// Data is the page-specific payload.
	Data any
}

// Renderer executes named templates from an embedded filesystem.
type Renderer struct {
	templates *template.Template
	flashes   Flashes
}

// New parses all page templates from the given filesystem.
//
// # Parameters
//   - files: Filesystem containing a templates/ directory of .html files.
//   - flashes: Flash message source; may be nil (pages render without flashes).
func New(files fs.FS, flashes Flashes) (*Renderer, error) {
	templates, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates, flashes: flashes}, nil
}

// Page renders a 200 page with pending flash messages injected.
func (renderer *Renderer) Page(writer http.ResponseWriter, request *http.Request, name string, data any) {
	var messages []string
	if renderer.flashes != nil {
		messages = renderer.flashes.Pop(request)
	}
	renderer.write(writer, request, http.StatusOK, name, PageData{Flash: messages, Data: data})
}

// Error renders the error page matching err.
//
// NotFound errors become the 404 page; everything else is logged and rendered
// as the generic 500 page, per the single-bucket failure policy of this app.
func (renderer *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus == http.StatusNotFound {
		renderer.write(writer, request, http.StatusNotFound, "404.html", PageData{})
		return
	}

	ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "page_server_error",
		slog.String("code", appError.Code),
		slog.Any("cause", appError.Cause),
	)
	renderer.write(writer, request, http.StatusInternalServerError, "500.html", PageData{})
}

// NotFound renders the 404 page. Used as the router's fallback handler.
func (renderer *Renderer) NotFound(writer http.ResponseWriter, request *http.Request) {
	renderer.write(writer, request, http.StatusNotFound, "404.html", PageData{})
}

// write executes the named template into a buffer, then flushes it with the
// given status. A render failure downgrades to a plain 500.
func (renderer *Renderer) write(writer http.ResponseWriter, request *http.Request, status int, name string, data PageData) {
	var buffer bytes.Buffer
	if err := renderer.templates.ExecuteTemplate(&buffer, name, data); err != nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "template_render_failed",
			slog.String("template", name),
			slog.Any("error", err),
		)
		http.Error(writer, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}
