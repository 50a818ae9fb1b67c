package artist

import "time"

// Artist is a performer who plays shows.
type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Genres             []string  `json:"genres"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	Website            string    `json:"website"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Ref identifies an artist on search pages, annotated with their live
// upcoming-show count.
type Ref struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult is the payload of the artist search page.
type SearchResult struct {
	Count int   `json:"count"`
	Data  []Ref `json:"data"`
}

// ShowEntry is a raw show row booked by this artist, before partitioning.
type ShowEntry struct {
	VenueID        int64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowSummary is a show as rendered on the artist page: the venue side plus
// the start timestamp as a display string.
type ShowSummary struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// Detail is an Artist expanded with their show history relative to a
// reference clock, split strictly into past and upcoming.
type Detail struct {
	Artist
	PastShows          []ShowSummary `json:"past_shows"`
	UpcomingShows      []ShowSummary `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

const (
	FieldName        = "name"
	FieldGenres      = "genres"
	FieldCity        = "city"
	FieldState       = "state"
	FieldPhone       = "phone"
	FieldImageLink   = "image_link"
	FieldFacebook    = "facebook_link"
	FieldWebsite     = "website_link"
	FieldSeekingDesc = "seeking_description"
)
