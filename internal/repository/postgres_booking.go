package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Transact runs fn in a READ COMMITTED transaction. Bookings of the same show
// are serialised by the row lock LockShow takes on the show.
func (p *PostgresBookingRepository) Transact(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	return runInTx(ctx, p.db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(&postgresBookingTx{tx: tx})
	})
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT id, show_id, booking_time FROM bookings WHERE id = $1`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(&booking.ID, &booking.ShowID, &booking.BookingTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	booking.BookingTime = booking.BookingTime.UTC()

	return &booking, nil
}

func (p *PostgresBookingRepository) GetBookedSeats(ctx context.Context, bookingID int) ([]domain.BookedSeat, error) {
	query := `
		SELECT id, booking_id, seat_id
		FROM booked_seats
		WHERE booking_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.BookedSeat, 0)

	for rows.Next() {
		var seat domain.BookedSeat

		err = rows.Scan(&seat.ID, &seat.BookingID, &seat.SeatID)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

type postgresBookingTx struct {
	tx pgx.Tx
}

func (t *postgresBookingTx) LockShow(ctx context.Context, showID int) (*domain.Show, error) {
	query := `
		SELECT id, movie_id, hall_id, show_time, price
		FROM shows
		WHERE id = $1
		FOR UPDATE
	`

	var (
		show  domain.Show
		price pgtype.Numeric
	)

	err := t.tx.QueryRow(ctx, query, showID).Scan(&show.ID, &show.MovieID, &show.HallID, &show.ShowTime, &price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	show.ShowTime = show.ShowTime.UTC()
	show.Price = numericToDecimal(price)

	return &show, nil
}

func (t *postgresBookingTx) SeatIDsForHall(ctx context.Context, hallID int) (domain.SeatSet, error) {
	return t.seatSet(ctx, `SELECT id FROM seats WHERE hall_id = $1`, hallID)
}

func (t *postgresBookingTx) BookedSeatIDsForShow(ctx context.Context, showID int) (domain.SeatSet, error) {
	query := `
		SELECT bs.seat_id
		FROM booked_seats bs
		JOIN bookings b ON b.id = bs.booking_id
		WHERE b.show_id = $1
	`

	return t.seatSet(ctx, query, showID)
}

func (t *postgresBookingTx) seatSet(ctx context.Context, query string, arg int) (domain.SeatSet, error) {
	rows, err := t.tx.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, err
	}

	return domain.NewSeatSet(ids...), nil
}

func (t *postgresBookingTx) ShowsForMovie(ctx context.Context, movieID int) ([]domain.Show, error) {
	query := `
		SELECT id, movie_id, hall_id, show_time
		FROM shows
		WHERE movie_id = $1
	`

	rows, err := t.tx.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.Show, 0)

	for rows.Next() {
		var show domain.Show

		err = rows.Scan(&show.ID, &show.MovieID, &show.HallID, &show.ShowTime)
		if err != nil {
			return nil, err
		}

		show.ShowTime = show.ShowTime.UTC()
		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func (t *postgresBookingTx) CountSeatsForHall(ctx context.Context, hallID int) (int, error) {
	var count int

	err := t.tx.QueryRow(ctx, `SELECT count(*) FROM seats WHERE hall_id = $1`, hallID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CreateBooking inserts the booking and one booked seat per requested seat.
// Seat ids are filled into booking.Seats in request order. A seat already held
// for the show fails the unique (show_id, seat_id) key and is reported as
// domain.ErrStorageFailure; the caller's transaction must then roll back.
func (t *postgresBookingTx) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (show_id, booking_time)
		VALUES ($1, $2)
		RETURNING id
	`

	err := t.tx.QueryRow(ctx, query, booking.ShowID, booking.BookingTime).Scan(&booking.ID)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(booking.Seats))
	for _, seat := range booking.Seats {
		rows = append(rows, []any{
			booking.ID,
			booking.ShowID,
			seat.SeatID,
		})
	}

	_, err = t.tx.CopyFrom(
		ctx,
		pgx.Identifier{"booked_seats"},
		[]string{"booking_id", "show_id", "seat_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.StorageError(fmt.Errorf("seat already held for show %d: %w", booking.ShowID, err))
		}

		return err
	}

	query = `SELECT id, seat_id FROM booked_seats WHERE booking_id = $1`

	seatRows, err := t.tx.Query(ctx, query, booking.ID)
	if err != nil {
		return err
	}
	defer seatRows.Close()

	ids := make(map[int]int, len(booking.Seats))

	for seatRows.Next() {
		var id, seatID int

		if err = seatRows.Scan(&id, &seatID); err != nil {
			return err
		}

		ids[seatID] = id
	}

	if err = seatRows.Err(); err != nil {
		return err
	}

	for i := range booking.Seats {
		booking.Seats[i].ID = ids[booking.Seats[i].SeatID]
		booking.Seats[i].BookingID = booking.ID
	}

	return nil
}
