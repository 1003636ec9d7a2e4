package mocks

import (
	"context"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

type MockShowRepo struct {
	CreateFunc func(ctx context.Context, show *domain.Show) error
	GetAllFunc func(ctx context.Context, pagination domain.Pagination) ([]domain.Show, *domain.Metadata, error)
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.Show) error {
	return m.CreateFunc(ctx, show)
}

func (m *MockShowRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Show, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}
