package domain

import "context"

type Movie struct {
	ID              int
	Title           string
	DurationMinutes int
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context, pagination Pagination) ([]Movie, *Metadata, error)
}
