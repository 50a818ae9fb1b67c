package show

import "time"

// Show is a booking that ties an artist to a venue at a start time.
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
	CreatedAt time.Time `json:"created_at"`
}

// Entry is a show row expanded with both sides of the booking.
type Entry struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ListItem is a show as rendered on the shows page, with the start
// timestamp as a display string.
type ListItem struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

const (
	FieldVenueID   = "venue_id"
	FieldArtistID  = "artist_id"
	FieldStartTime = "start_time"
)
