package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

type PostgresVenueRepository struct {
	db *pgxpool.Pool
}

func NewPostgresVenueRepository(db *pgxpool.Pool) *PostgresVenueRepository {
	return &PostgresVenueRepository{
		db: db,
	}
}

func (p *PostgresVenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	query := `INSERT INTO venues (name, location)
		VALUES ($1, $2)
		RETURNING id`

	return p.db.QueryRow(ctx, query, venue.Name, venue.Location).Scan(&venue.ID)
}

func (p *PostgresVenueRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Venue, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), id, name, location
		FROM venues
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	venues := []domain.Venue{}

	for rows.Next() {
		var venue domain.Venue

		err := rows.Scan(&totalRecords, &venue.ID, &venue.Name, &venue.Location)
		if err != nil {
			return nil, nil, err
		}

		venues = append(venues, venue)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return venues, domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize), nil
}

// CreateHall returns domain.ErrRecordNotFound when the venue does not exist.
func (p *PostgresVenueRepository) CreateHall(ctx context.Context, hall *domain.Hall) error {
	query := `INSERT INTO halls (venue_id, name)
		VALUES ($1, $2)
		RETURNING id`

	err := p.db.QueryRow(ctx, query, hall.VenueID, hall.Name).Scan(&hall.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresVenueRepository) GetAllHalls(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Hall, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), id, venue_id, name
		FROM halls
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	halls := []domain.Hall{}

	for rows.Next() {
		var hall domain.Hall

		err := rows.Scan(&totalRecords, &hall.ID, &hall.VenueID, &hall.Name)
		if err != nil {
			return nil, nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return halls, domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize), nil
}
