package mocks

import (
	"context"
	"time"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingStore struct {
	mock.Mock
	domain.BookingStore
}

func (m *MockBookingStore) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) GetBookedSeats(ctx context.Context, bookingID int) ([]domain.BookedSeat, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookedSeat), args.Error(1)
}

type MockBookingManager struct {
	mock.Mock
}

func (m *MockBookingManager) Book(ctx context.Context, showID int, seatIDs []int) (*domain.Booking, error) {
	args := m.Called(ctx, showID, seatIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockAnalyticsAggregator struct {
	mock.Mock
}

func (m *MockAnalyticsAggregator) MovieAnalytics(
	ctx context.Context,
	movieID int,
	start, end time.Time) (*domain.MovieAnalytics, error) {

	args := m.Called(ctx, movieID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovieAnalytics), args.Error(1)
}
