package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Show struct {
	ID       int
	MovieID  int
	HallID   int
	ShowTime time.Time
	Price    decimal.Decimal
}

type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	GetAll(ctx context.Context, pagination Pagination) ([]Show, *Metadata, error)
}
