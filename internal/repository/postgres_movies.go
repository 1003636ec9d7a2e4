package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, duration_minutes)
		VALUES ($1, $2)
		RETURNING id`

	return p.db.QueryRow(ctx, query, movie.Title, movie.DurationMinutes).Scan(&movie.ID)
}

func (p *PostgresMovieRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Movie, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), id, title, duration_minutes
		FROM movies
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.DurationMinutes,
		)
		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return movies, metadata, nil
}
