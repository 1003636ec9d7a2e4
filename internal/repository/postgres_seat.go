package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

// CreateLayout inserts the seats described by layout into the hall and returns
// how many were created. Seats that already exist are left untouched and not
// counted.
func (p *PostgresSeatRepository) CreateLayout(ctx context.Context, hallID int, layout domain.Layout) (int, error) {
	seats := layout.Seats(hallID)

	rowLabels := make([]string, len(seats))
	seatNumbers := make([]int, len(seats))
	for i, seat := range seats {
		rowLabels[i] = seat.Row
		seatNumbers[i] = seat.Number
	}

	var created int

	err := runInTx(ctx, p.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if err := lockHall(ctx, tx, hallID); err != nil {
			return err
		}

		query := `
			INSERT INTO seats (hall_id, row_label, seat_number)
			SELECT $1, t.row_label, t.seat_number
			FROM unnest($2::text[], $3::int[]) WITH ORDINALITY AS t(row_label, seat_number, ord)
			ORDER BY t.ord
			ON CONFLICT (hall_id, row_label, seat_number) DO NOTHING
		`

		tag, err := tx.Exec(ctx, query, hallID, rowLabels, seatNumbers)
		if err != nil {
			return err
		}

		created = int(tag.RowsAffected())

		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}

// GetSeatsByHall lists the seats of a hall ordered by row label and number.
func (p *PostgresSeatRepository) GetSeatsByHall(ctx context.Context, hallID int) ([]domain.Seat, error) {
	var exists bool

	err := p.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM halls WHERE id = $1)`, hallID).Scan(&exists)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, domain.ErrRecordNotFound
	}

	query := `
		SELECT id, hall_id, row_label, seat_number
		FROM seats
		WHERE hall_id = $1
		ORDER BY row_label, seat_number
	`

	rows, err := p.db.Query(ctx, query, hallID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(&seat.ID, &seat.HallID, &seat.Row, &seat.Number)
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

func lockHall(ctx context.Context, tx pgx.Tx, hallID int) error {
	var id int

	err := tx.QueryRow(ctx, `SELECT id FROM halls WHERE id = $1 FOR SHARE`, hallID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}
