package booking

import (
	"context"
	"sync"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

// memStore keeps everything in memory. Transact holds the store mutex for the
// whole unit of work and applies buffered writes only on success.
type memStore struct {
	mu sync.Mutex

	shows     map[int]domain.Show
	hallSeats map[int][]int
	bookings  map[int]domain.Booking
	booked    map[int]domain.SeatSet

	nextBookingID    int
	nextBookedSeatID int
	createErr        error
}

func newMemStore() *memStore {
	return &memStore{
		shows:     make(map[int]domain.Show),
		hallSeats: make(map[int][]int),
		bookings:  make(map[int]domain.Booking),
		booked:    make(map[int]domain.SeatSet),
	}
}

func (s *memStore) addHall(hallID int, seatIDs ...int) {
	s.hallSeats[hallID] = seatIDs
}

func (s *memStore) addShow(show domain.Show) {
	s.shows[show.ID] = show
}

// markBooked records seats as taken without going through a booking.
func (s *memStore) markBooked(showID int, seatIDs ...int) {
	if s.booked[showID] == nil {
		s.booked[showID] = domain.NewSeatSet()
	}
	for _, id := range seatIDs {
		s.booked[showID][id] = struct{}{}
	}
}

func (s *memStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *memStore) Transact(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s}
	if err := fn(tx); err != nil {
		return err
	}

	for _, booking := range tx.pending {
		s.bookings[booking.ID] = booking
		s.markBooked(booking.ShowID, booking.SeatIDs()...)
	}

	return nil
}

func (s *memStore) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &booking, nil
}

func (s *memStore) GetBookedSeats(ctx context.Context, bookingID int) ([]domain.BookedSeat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bookings[bookingID].Seats, nil
}

type memTx struct {
	store   *memStore
	pending []domain.Booking
}

func (t *memTx) LockShow(ctx context.Context, showID int) (*domain.Show, error) {
	show, ok := t.store.shows[showID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &show, nil
}

func (t *memTx) SeatIDsForHall(ctx context.Context, hallID int) (domain.SeatSet, error) {
	return domain.NewSeatSet(t.store.hallSeats[hallID]...), nil
}

func (t *memTx) BookedSeatIDsForShow(ctx context.Context, showID int) (domain.SeatSet, error) {
	set := domain.NewSeatSet()
	for id := range t.store.booked[showID] {
		set[id] = struct{}{}
	}

	for _, booking := range t.pending {
		if booking.ShowID == showID {
			for _, id := range booking.SeatIDs() {
				set[id] = struct{}{}
			}
		}
	}

	return set, nil
}

func (t *memTx) ShowsForMovie(ctx context.Context, movieID int) ([]domain.Show, error) {
	shows := make([]domain.Show, 0)
	for _, show := range t.store.shows {
		if show.MovieID == movieID {
			shows = append(shows, show)
		}
	}

	return shows, nil
}

func (t *memTx) CountSeatsForHall(ctx context.Context, hallID int) (int, error) {
	return len(t.store.hallSeats[hallID]), nil
}

func (t *memTx) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	if t.store.createErr != nil {
		return t.store.createErr
	}

	t.store.nextBookingID++
	booking.ID = t.store.nextBookingID

	for i := range booking.Seats {
		t.store.nextBookedSeatID++
		booking.Seats[i].ID = t.store.nextBookedSeatID
		booking.Seats[i].BookingID = booking.ID
	}

	t.pending = append(t.pending, *booking)

	return nil
}
