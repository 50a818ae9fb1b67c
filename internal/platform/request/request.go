// Copyright (c) 2026 Playbill. All rights reserved.
// Author: vu.phamle.vn@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
form decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vuphamle/playbill/internal/platform/validate"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ID retrieves a named URL parameter and parses it as a numeric identifier.

Returns:
  - int64: The parsed identifier
  - bool: false when the parameter is missing or not a positive integer
*/
func ID(request *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

/*
DecodeForm parses an application/x-www-form-urlencoded request body.

Returns:
  - url.Values: The submitted fields
  - error: validate.ErrInvalidForm if parsing fails, otherwise nil
*/
func DecodeForm(request *http.Request) (url.Values, error) {
	if err := request.ParseForm(); err != nil {
		return nil, validate.ErrInvalidForm
	}
	return request.PostForm, nil
}

/*
FormBool interprets a checkbox field.

HTML checkboxes submit "y"/"on"/"true" when ticked and are absent otherwise.
*/
func FormBool(values url.Values, key string) bool {
	switch values.Get(key) {
	case "y", "on", "true", "1":
		return true
	}
	return false
}
