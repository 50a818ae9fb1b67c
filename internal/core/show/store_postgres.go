package show

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vuphamle/playbill/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]Entry, error) {
	query := `
		SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time ASC
	`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_shows")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.VenueID, &entry.VenueName,
			&entry.ArtistID, &entry.ArtistName, &entry.ArtistImageLink,
			&entry.StartTime,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_show")
		}
		entries = append(entries, entry)
	}

	return entries, dberr.Wrap(rows.Err(), "list_shows_rows")
}

// Create relies on the foreign keys to reject bookings against a venue or
// artist that does not exist; dberr maps that to a validation error.
func (repository *PostgresRepository) Create(context context.Context, s *Show) error {
	query := `
		INSERT INTO shows (venue_id, artist_id, start_time, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := repository.db.QueryRow(context, query, s.VenueID, s.ArtistID, s.StartTime).
		Scan(&s.ID, &s.CreatedAt)

	return dberr.Wrap(err, "create_show")
}
