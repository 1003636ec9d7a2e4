package domain

import (
	"context"
	"time"
)

type BookingConfirmed struct {
	EventID   string    `json:"eventId"`
	BookingID int       `json:"bookingId"`
	ShowID    int       `json:"showId"`
	MovieID   int       `json:"movieId"`
	SeatIDs   []int     `json:"seatIds"`
	BookedAt  time.Time `json:"bookedAt"`
}

type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error
}
