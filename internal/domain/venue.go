package domain

import "context"

// Venue is a cinema building. It owns halls.
type Venue struct {
	ID       int
	Name     string
	Location string
}

type Hall struct {
	ID      int
	VenueID int
	Name    string
}

type VenueRepository interface {
	Create(ctx context.Context, venue *Venue) error
	GetAll(ctx context.Context, pagination Pagination) ([]Venue, *Metadata, error)
	CreateHall(ctx context.Context, hall *Hall) error
	GetAllHalls(ctx context.Context, pagination Pagination) ([]Hall, *Metadata, error)
}
