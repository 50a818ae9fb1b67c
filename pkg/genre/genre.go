// Copyright (c) 2026 Playbill. All rights reserved.
// Author: vu.phamle.vn@gmail.com

// Package genre converts between the comma-joined genre string submitted by
// HTML forms and the ordered genre list stored on venues and artists.
//
// # Contract
//
// The conversion is a lossless round-trip for trimmed, non-empty genre names:
// Split(Join(list)) == list. Empty input produces an empty list, never a list
// containing an empty string.
package genre

import "strings"

// Split parses a comma-joined genre string into an ordered list.
//
// Surrounding whitespace is trimmed from each entry; empty entries (from
// trailing or doubled commas) are dropped.
func Split(raw string) []string {
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			genres = append(genres, trimmed)
		}
	}
	return genres
}

// Join renders an ordered genre list back into its comma-joined form.
func Join(genres []string) string {
	return strings.Join(genres, ",")
}

// Flatten normalizes form input that may arrive either as one comma-joined
// value or as repeated field values (multi-select), preserving order.
func Flatten(values []string) []string {
	genres := make([]string, 0, len(values))
	for _, value := range values {
		genres = append(genres, Split(value)...)
	}
	return genres
}
