package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "github.com/gnaneshwar04/Movie-Ticket-Booking/internal/booking"
	publishTimeout      = 5 * time.Second

	reasonNotFound    = "not_found"
	reasonInvalidSeat = "invalid_seat"
	reasonConflict    = "seat_conflict"
	reasonStorage     = "storage_failure"
)

// CacheInvalidator drops cached analytics of a movie after its bookings change.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, movieID int) error
}

// Manager books seats for shows. Each call runs as one transaction against the
// store: the show is locked, seats are validated against the hall and checked
// for conflicts, and the booking with all its seats is inserted or nothing is.
type Manager struct {
	store     domain.BookingStore
	publisher domain.EventPublisher
	cache     CacheInvalidator
	logger    *slog.Logger
	now       func() time.Time

	committed metric.Int64Counter
	rejected  metric.Int64Counter
}

type Option func(*Manager)

func WithPublisher(publisher domain.EventPublisher) Option {
	return func(m *Manager) {
		m.publisher = publisher
	}
}

func WithCacheInvalidator(cache CacheInvalidator) Option {
	return func(m *Manager) {
		m.cache = cache
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(store domain.BookingStore, opts ...Option) (*Manager, error) {
	m := &Manager{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	meter := otel.Meter(instrumentationName)

	var err error
	m.committed, err = meter.Int64Counter("bookings.committed",
		metric.WithDescription("Number of committed bookings"))
	if err != nil {
		return nil, err
	}

	m.rejected, err = meter.Int64Counter("bookings.rejected",
		metric.WithDescription("Number of rejected booking attempts"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Book reserves seatIDs for the show. It returns domain.ErrRecordNotFound for an
// unknown show, *domain.InvalidSeatError, *domain.SeatConflictError carrying
// suggestions, or an error matching domain.ErrStorageFailure.
func (m *Manager) Book(ctx context.Context, showID int, seatIDs []int) (*domain.Booking, error) {
	if len(seatIDs) == 0 {
		return nil, domain.ErrNoSeatsRequested
	}

	var (
		show    *domain.Show
		booking domain.Booking
	)

	err := m.store.Transact(ctx, func(tx domain.BookingTx) error {
		var err error

		show, err = tx.LockShow(ctx, showID)
		if err != nil {
			return err
		}

		hallSeats, err := tx.SeatIDsForHall(ctx, show.HallID)
		if err != nil {
			return err
		}

		if invalid := firstInvalidSeat(hallSeats, seatIDs); invalid != nil {
			return invalid
		}

		conflicts, err := Detect(ctx, tx, show.ID, seatIDs)
		if err != nil {
			return err
		}

		if len(conflicts) > 0 {
			suggestions, err := FindAlternatives(ctx, tx, show.ID, show.MovieID, len(seatIDs))
			if err != nil {
				return err
			}

			return &domain.SeatConflictError{
				ShowID:             show.ID,
				ConflictingSeatIDs: conflicts,
				Suggestions:        suggestions,
			}
		}

		booking = domain.NewBooking(show.ID, seatIDs, m.now())

		return tx.CreateBooking(ctx, &booking)
	})
	if err != nil {
		return nil, m.reject(ctx, showID, err)
	}

	m.committed.Add(ctx, 1)
	m.afterCommit(ctx, show, &booking)

	return &booking, nil
}

func (m *Manager) reject(ctx context.Context, showID int, err error) error {
	var (
		invalidSeat *domain.InvalidSeatError
		conflict    *domain.SeatConflictError
		reason      string
	)

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		reason = reasonNotFound
	case errors.As(err, &invalidSeat):
		reason = reasonInvalidSeat
	case errors.As(err, &conflict):
		reason = reasonConflict
		m.logger.InfoContext(ctx, "seat conflict",
			"showId", showID,
			"conflictingSeatIds", conflict.ConflictingSeatIDs,
			"suggestions", len(conflict.Suggestions))
	default:
		reason = reasonStorage
		err = domain.StorageError(err)
		m.logger.ErrorContext(ctx, "booking transaction failed", "showId", showID, "error", err)
	}

	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))

	return err
}

// afterCommit runs the side effects of a committed booking. Their failures are
// logged and never undo the booking.
func (m *Manager) afterCommit(ctx context.Context, show *domain.Show, booking *domain.Booking) {
	if m.cache != nil {
		if err := m.cache.Invalidate(ctx, show.MovieID); err != nil {
			m.logger.WarnContext(ctx, "failed to invalidate analytics cache", "movieId", show.MovieID, "error", err)
		}
	}

	if m.publisher == nil {
		return
	}

	event := domain.BookingConfirmed{
		EventID:   uuid.NewString(),
		BookingID: booking.ID,
		ShowID:    show.ID,
		MovieID:   show.MovieID,
		SeatIDs:   booking.SeatIDs(),
		BookedAt:  booking.BookingTime,
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := m.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		m.logger.ErrorContext(ctx, "failed to publish booking event", "bookingId", booking.ID, "error", err)
	}
}
