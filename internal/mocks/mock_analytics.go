package mocks

import (
	"context"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) MovieAnalytics(
	ctx context.Context,
	movieID int,
	dates domain.DateRange) (*domain.MovieAnalytics, error) {

	args := m.Called(ctx, movieID, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovieAnalytics), args.Error(1)
}

type MockAnalyticsCache struct {
	mock.Mock
}

func (m *MockAnalyticsCache) Get(
	ctx context.Context,
	movieID int,
	dates domain.DateRange) (*domain.MovieAnalytics, int64, error) {

	args := m.Called(ctx, movieID, dates)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.MovieAnalytics), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnalyticsCache) Set(
	ctx context.Context,
	result *domain.MovieAnalytics,
	dates domain.DateRange,
	version int64) error {

	args := m.Called(ctx, result, dates, version)
	return args.Error(0)
}

func (m *MockAnalyticsCache) Invalidate(ctx context.Context, movieID int) error {
	args := m.Called(ctx, movieID)
	return args.Error(0)
}
