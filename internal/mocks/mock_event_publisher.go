package mocks

import (
	"context"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingConfirmed(ctx context.Context, event domain.BookingConfirmed) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
