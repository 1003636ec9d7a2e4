package mocks

import (
	"context"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc func(ctx context.Context, movie *domain.Movie) error
	GetAllFunc func(ctx context.Context, pagination domain.Pagination) ([]domain.Movie, *domain.Metadata, error)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Movie, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}
