package booking

import (
	"context"
	"sort"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

// AlternativeSource is the read access FindAlternatives needs. A domain.BookingTx
// satisfies it, so suggestions see the same snapshot as the failed booking.
type AlternativeSource interface {
	domain.AvailabilityIndex
	ShowsForMovie(ctx context.Context, movieID int) ([]domain.Show, error)
	CountSeatsForHall(ctx context.Context, hallID int) (int, error)
}

// FindAlternatives lists the other shows of the movie that still have at least
// seatsNeeded free seats, earliest first.
func FindAlternatives(
	ctx context.Context,
	src AlternativeSource,
	originalShowID int,
	movieID int,
	seatsNeeded int) ([]domain.Suggestion, error) {

	shows, err := src.ShowsForMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	capacities := make(map[int]int)
	suggestions := make([]domain.Suggestion, 0)

	for _, show := range shows {
		if show.ID == originalShowID {
			continue
		}

		capacity, ok := capacities[show.HallID]
		if !ok {
			capacity, err = src.CountSeatsForHall(ctx, show.HallID)
			if err != nil {
				return nil, err
			}
			capacities[show.HallID] = capacity
		}

		booked, err := src.BookedSeatIDsForShow(ctx, show.ID)
		if err != nil {
			return nil, err
		}

		if capacity-booked.Len() >= seatsNeeded {
			suggestions = append(suggestions, domain.Suggestion{ShowID: show.ID, ShowTime: show.ShowTime})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if !suggestions[i].ShowTime.Equal(suggestions[j].ShowTime) {
			return suggestions[i].ShowTime.Before(suggestions[j].ShowTime)
		}
		return suggestions[i].ShowID < suggestions[j].ShowID
	})

	return suggestions, nil
}
