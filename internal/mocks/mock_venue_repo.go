package mocks

import (
	"context"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

type MockVenueRepo struct {
	domain.VenueRepository
	CreateFunc      func(ctx context.Context, venue *domain.Venue) error
	GetAllFunc      func(ctx context.Context, pagination domain.Pagination) ([]domain.Venue, *domain.Metadata, error)
	CreateHallFunc  func(ctx context.Context, hall *domain.Hall) error
	GetAllHallsFunc func(ctx context.Context, pagination domain.Pagination) ([]domain.Hall, *domain.Metadata, error)
}

func (m *MockVenueRepo) Create(ctx context.Context, venue *domain.Venue) error {
	return m.CreateFunc(ctx, venue)
}

func (m *MockVenueRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Venue, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockVenueRepo) CreateHall(ctx context.Context, hall *domain.Hall) error {
	return m.CreateHallFunc(ctx, hall)
}

func (m *MockVenueRepo) GetAllHalls(ctx context.Context, pagination domain.Pagination) ([]domain.Hall, *domain.Metadata, error) {
	return m.GetAllHallsFunc(ctx, pagination)
}
