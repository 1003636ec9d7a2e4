package domain

import (
	"context"
	"sort"
)

type Seat struct {
	ID     int
	HallID int
	Row    string
	Number int
}

// SeatSet is a set of seat ids.
type SeatSet map[int]struct{}

func NewSeatSet(ids ...int) SeatSet {
	set := make(SeatSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

func (s SeatSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

func (s SeatSet) Len() int {
	return len(s)
}

// Layout maps a row label to the number of seats in that row.
type Layout map[string]int

// Seats expands the layout into seats numbered 1..count for every row. Rows are
// emitted in label order so repeated calls produce the same sequence. Rows with
// a count below one produce no seats.
func (l Layout) Seats(hallID int) []Seat {
	labels := make([]string, 0, len(l))
	total := 0
	for label, count := range l {
		if count < 1 {
			continue
		}
		labels = append(labels, label)
		total += count
	}
	sort.Strings(labels)

	seats := make([]Seat, 0, total)
	for _, label := range labels {
		for number := 1; number <= l[label]; number++ {
			seats = append(seats, Seat{HallID: hallID, Row: label, Number: number})
		}
	}

	return seats
}

// SeatCatalog answers which seats belong to a hall.
type SeatCatalog interface {
	SeatIDsForHall(ctx context.Context, hallID int) (SeatSet, error)
}

type SeatRepository interface {
	CreateLayout(ctx context.Context, hallID int, layout Layout) (int, error)
	GetSeatsByHall(ctx context.Context, hallID int) ([]Seat, error)
}
