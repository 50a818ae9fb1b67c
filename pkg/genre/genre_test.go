// Copyright (c) 2026 Playbill. All rights reserved.
// Author: vu.phamle.vn@gmail.com

package genre_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vuphamle/playbill/pkg/genre"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"two_genres", "Jazz,Blues", []string{"Jazz", "Blues"}},
		{"spaced", " Jazz , Blues ", []string{"Jazz", "Blues"}},
		{"single", "Rock", []string{"Rock"}},
		{"empty_yields_empty_list", "", []string{}},
		{"trailing_comma", "Jazz,", []string{"Jazz"}},
		{"doubled_comma", "Jazz,,Blues", []string{"Jazz", "Blues"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, genre.Split(tt.raw))
		})
	}
}

func TestJoin_RoundTrip(t *testing.T) {
	genres := []string{"Jazz", "Blues"}
	assert.Equal(t, genres, genre.Split(genre.Join(genres)))

	// Order is preserved through the round-trip.
	ordered := []string{"Blues", "Jazz", "Classical"}
	assert.Equal(t, ordered, genre.Split(genre.Join(ordered)))
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"multi_select", []string{"Jazz", "Blues"}, []string{"Jazz", "Blues"}},
		{"single_joined_value", []string{"Jazz,Blues"}, []string{"Jazz", "Blues"}},
		{"mixed", []string{"Jazz,Blues", "Rock"}, []string{"Jazz", "Blues", "Rock"}},
		{"nil", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, genre.Flatten(tt.values))
		})
	}
}
