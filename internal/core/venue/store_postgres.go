package venue

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

// ListForBrowse returns one row per venue ordered by (city, state, name),
// each annotated with its upcoming-show count relative to now. The service
// folds consecutive rows into city groups.
func (repository *PostgresRepository) ListForBrowse(context context.Context, now time.Time) ([]BrowseRow, error) {
	query := `
		SELECT v.city, v.state, v.id, v.name,
		       (SELECT count(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > $1)
		FROM venues v
		ORDER BY v.city ASC, v.state ASC, v.name ASC
	`

	rows, err := repository.db.Query(context, query, now)
	if err != nil {
		return nil, dberr.Wrap(err, "browse_venues")
	}
	defer rows.Close()

	var result []BrowseRow
	for rows.Next() {
		var row BrowseRow
		if err := rows.Scan(&row.City, &row.State, &row.Venue.ID, &row.Venue.Name, &row.Venue.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_browse_venue")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "browse_venues_rows")
}

// Search matches venue names case-insensitively against a substring.
// An empty term matches every venue.
func (repository *PostgresRepository) Search(context context.Context, term string, now time.Time) ([]Ref, error) {
	query := `
		SELECT v.id, v.name,
		       (SELECT count(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > $2)
		FROM venues v
		WHERE v.name ILIKE '%' || $1 || '%'
		ORDER BY v.name ASC
	`

	rows, err := repository.db.Query(context, query, term, now)
	if err != nil {
		return nil, dberr.Wrap(err, "search_venues")
	}
	defer rows.Close()

	var refs []Ref
	for rows.Next() {
		var ref Ref
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_ref")
		}
		refs = append(refs, ref)
	}

	return refs, dberr.Wrap(rows.Err(), "search_venues_rows")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Venue, error) {
	query := `
		SELECT id, name, genres, city, state, address, phone,
		       image_link, facebook_link, website,
		       seeking_talent, seeking_description,
		       created_at, updated_at
		FROM venues
		WHERE id = $1
	`

	v := &Venue{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&v.ID, &v.Name, &v.Genres, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.Website,
		&v.SeekingTalent, &v.SeekingDescription,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_venue")
	}

	return v, nil
}

// ShowsFor returns every show booked at the venue, expanded with the artist
// side, ordered by start time ascending.
func (repository *PostgresRepository) ShowsFor(context context.Context, id int64) ([]ShowEntry, error) {
	query := `
		SELECT s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC
	`

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "venue_shows")
	}
	defer rows.Close()

	var entries []ShowEntry
	for rows.Next() {
		var entry ShowEntry
		if err := rows.Scan(&entry.ArtistID, &entry.ArtistName, &entry.ArtistImageLink, &entry.StartTime); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_show")
		}
		entries = append(entries, entry)
	}

	return entries, dberr.Wrap(rows.Err(), "venue_shows_rows")
}

func (repository *PostgresRepository) Create(context context.Context, v *Venue) error {
	query := `
		INSERT INTO venues (name, genres, city, state, address, phone,
		                    image_link, facebook_link, website,
		                    seeking_talent, seeking_description,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		v.Name, v.Genres, v.City, v.State, v.Address, v.Phone,
		v.ImageLink, v.FacebookLink, v.Website,
		v.SeekingTalent, v.SeekingDescription,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)

	return dberr.Wrap(err, "create_venue")
}

// Update overwrites every mutable field (full-replace semantics).
func (repository *PostgresRepository) Update(context context.Context, v *Venue) error {
	query := `
		UPDATE venues
		SET name = $2, genres = $3, city = $4, state = $5, address = $6,
		    phone = $7, image_link = $8, facebook_link = $9, website = $10,
		    seeking_talent = $11, seeking_description = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		v.ID, v.Name, v.Genres, v.City, v.State, v.Address,
		v.Phone, v.ImageLink, v.FacebookLink, v.Website,
		v.SeekingTalent, v.SeekingDescription,
	).Scan(&v.UpdatedAt)

	return dberr.Wrap(err, "update_venue")
}

// Delete removes a venue and its dependent shows in one transaction.
// The shows foreign key also cascades, but the dependent delete is issued
// explicitly so the whole removal is a single visible unit of work.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {

	// Establish transactional boundary
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_venue_tx")
	}
	defer transaction.Rollback(context)

	// Step 1: Remove dependent shows
	if _, err := transaction.Exec(context, `DELETE FROM shows WHERE venue_id = $1`, id); err != nil {
		return dberr.Wrap(err, "delete_venue_shows")
	}

	// Step 2: Remove the venue itself
	result, err := transaction.Exec(context, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_venue")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return transaction.Commit(context)
}
