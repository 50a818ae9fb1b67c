// Copyright (c) 2026 Playbill. All rights reserved.
// Author: vu.phamle.vn@gmail.com

package api

import (
	"net/http"

	"github.com/vuphamle/playbill/internal/platform/render"
)

// NewHomeHandler renders the landing page. Flash messages from the create
// flows surface here, since those flows redirect to the root.
func NewHomeHandler(pages *render.Renderer) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		pages.Page(writer, request, "home.html", nil)
	}
}
