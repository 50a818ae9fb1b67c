package artist

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vuphamle/playbill/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every artist, unfiltered and unpaginated, ordered by name.
func (repository *PostgresRepository) List(context context.Context) ([]*Artist, error) {
	query := `
		SELECT id, name, genres, city, state, phone,
		       image_link, facebook_link, website,
		       seeking_venue, seeking_description,
		       created_at, updated_at
		FROM artists
		ORDER BY name ASC
	`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	var artists []*Artist
	for rows.Next() {
		a := &Artist{}
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Genres, &a.City, &a.State, &a.Phone,
			&a.ImageLink, &a.FacebookLink, &a.Website,
			&a.SeekingVenue, &a.SeekingDescription,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}

	return artists, dberr.Wrap(rows.Err(), "list_artists_rows")
}

// Search matches artist names case-insensitively against a substring.
// An empty term matches every artist.
func (repository *PostgresRepository) Search(context context.Context, term string, now time.Time) ([]Ref, error) {
	query := `
		SELECT a.id, a.name,
		       (SELECT count(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time > $2)
		FROM artists a
		WHERE a.name ILIKE '%' || $1 || '%'
		ORDER BY a.name ASC
	`

	rows, err := repository.db.Query(context, query, term, now)
	if err != nil {
		return nil, dberr.Wrap(err, "search_artists")
	}
	defer rows.Close()

	var refs []Ref
	for rows.Next() {
		var ref Ref
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_ref")
		}
		refs = append(refs, ref)
	}

	return refs, dberr.Wrap(rows.Err(), "search_artists_rows")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Artist, error) {
	query := `
		SELECT id, name, genres, city, state, phone,
		       image_link, facebook_link, website,
		       seeking_venue, seeking_description,
		       created_at, updated_at
		FROM artists
		WHERE id = $1
	`

	a := &Artist{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Name, &a.Genres, &a.City, &a.State, &a.Phone,
		&a.ImageLink, &a.FacebookLink, &a.Website,
		&a.SeekingVenue, &a.SeekingDescription,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}

	return a, nil
}

// ShowsFor returns every show the artist plays, expanded with the venue
// side, ordered by start time ascending.
func (repository *PostgresRepository) ShowsFor(context context.Context, id int64) ([]ShowEntry, error) {
	query := `
		SELECT s.venue_id, v.name, v.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC
	`

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "artist_shows")
	}
	defer rows.Close()

	var entries []ShowEntry
	for rows.Next() {
		var entry ShowEntry
		if err := rows.Scan(&entry.VenueID, &entry.VenueName, &entry.VenueImageLink, &entry.StartTime); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_show")
		}
		entries = append(entries, entry)
	}

	return entries, dberr.Wrap(rows.Err(), "artist_shows_rows")
}

func (repository *PostgresRepository) Create(context context.Context, a *Artist) error {
	query := `
		INSERT INTO artists (name, genres, city, state, phone,
		                     image_link, facebook_link, website,
		                     seeking_venue, seeking_description,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		a.Name, a.Genres, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, a.Website,
		a.SeekingVenue, a.SeekingDescription,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, "create_artist")
}

// Update overwrites every mutable field (full-replace semantics).
func (repository *PostgresRepository) Update(context context.Context, a *Artist) error {
	query := `
		UPDATE artists
		SET name = $2, genres = $3, city = $4, state = $5, phone = $6,
		    image_link = $7, facebook_link = $8, website = $9,
		    seeking_venue = $10, seeking_description = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		a.ID, a.Name, a.Genres, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, a.Website,
		a.SeekingVenue, a.SeekingDescription,
	).Scan(&a.UpdatedAt)

	return dberr.Wrap(err, "update_artist")
}
