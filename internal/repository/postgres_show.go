package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

// Create returns domain.ErrRecordNotFound when the movie or hall does not exist.
func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `INSERT INTO shows (movie_id, hall_id, show_time, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := p.db.QueryRow(ctx, query, show.MovieID, show.HallID, show.ShowTime, show.Price).Scan(&show.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresShowRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Show, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), id, movie_id, hall_id, show_time, price
		FROM shows
		ORDER BY show_time, id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	shows := []domain.Show{}

	for rows.Next() {
		var (
			show  domain.Show
			price pgtype.Numeric
		)

		err := rows.Scan(&totalRecords, &show.ID, &show.MovieID, &show.HallID, &show.ShowTime, &price)
		if err != nil {
			return nil, nil, err
		}

		show.ShowTime = show.ShowTime.UTC()
		show.Price = numericToDecimal(price)
		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return shows, domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize), nil
}
