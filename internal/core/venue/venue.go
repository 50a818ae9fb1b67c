package venue

import "time"

// Venue is a place that hosts shows.
type Venue struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Genres             []string  `json:"genres"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	Website            string    `json:"website"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Ref identifies a venue on listing and search pages, annotated with its
// live upcoming-show count.
type Ref struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// BrowseRow is one venue row of the grouped-listing query, before grouping.
type BrowseRow struct {
	City  string
	State string
	Venue Ref
}

// CityGroup collects the venues sharing an exact (city, state) pair.
// No normalization is applied: casing or whitespace differences are
// distinct groups.
type CityGroup struct {
	City   string `json:"city"`
	State  string `json:"state"`
	Venues []Ref  `json:"venues"`
}

// SearchResult is the payload of the venue search page.
type SearchResult struct {
	Count int   `json:"count"`
	Data  []Ref `json:"data"`
}

// ShowEntry is a raw show row attached to this venue, before partitioning.
type ShowEntry struct {
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowSummary is a show as rendered on the venue page: the artist side plus
// the start timestamp as a display string.
type ShowSummary struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Detail is a Venue expanded with its show history relative to a reference
// clock, split strictly into past and upcoming.
type Detail struct {
	Venue
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
	FieldAddress     = "address"
	FieldPhone       = "phone"
	FieldImageLink   = "image_link"
	FieldFacebook    = "facebook_link"
	FieldWebsite     = "website_link"
	FieldSeekingDesc = "seeking_description"
)
