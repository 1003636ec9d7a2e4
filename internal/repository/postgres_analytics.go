package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

type PostgresAnalyticsRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAnalyticsRepository(db *pgxpool.Pool) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{
		db: db,
	}
}

// MovieAnalytics counts booked seats of the movie's shows dated within the range
// and sums the show price over them. Dates are taken in UTC.
func (p *PostgresAnalyticsRepository) MovieAnalytics(
	ctx context.Context,
	movieID int,
	dates domain.DateRange) (*domain.MovieAnalytics, error) {

	query := `
		SELECT count(bs.id), COALESCE(sum(s.price), 0)
		FROM booked_seats bs
		JOIN bookings b ON b.id = bs.booking_id
		JOIN shows s ON s.id = b.show_id
		WHERE s.movie_id = $1
			AND (s.show_time AT TIME ZONE 'UTC')::date BETWEEN $2::date AND $3::date
	`

	var (
		result domain.MovieAnalytics
		gmv    pgtype.Numeric
	)

	err := p.db.QueryRow(ctx, query, movieID, dates.Start, dates.End).Scan(&result.TotalTickets, &gmv)
	if err != nil {
		return nil, err
	}

	result.MovieID = movieID
	result.TotalGmv = numericToDecimal(gmv)

	return &result, nil
}
