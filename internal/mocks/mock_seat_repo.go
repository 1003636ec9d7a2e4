package mocks

import (
	"context"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

type MockSeatRepo struct {
	CreateLayoutFunc   func(ctx context.Context, hallID int, layout domain.Layout) (int, error)
	GetSeatsByHallFunc func(ctx context.Context, hallID int) ([]domain.Seat, error)
}

func (m *MockSeatRepo) CreateLayout(ctx context.Context, hallID int, layout domain.Layout) (int, error) {
	return m.CreateLayoutFunc(ctx, hallID, layout)
}

func (m *MockSeatRepo) GetSeatsByHall(ctx context.Context, hallID int) ([]domain.Seat, error) {
	return m.GetSeatsByHallFunc(ctx, hallID)
}
