package integration_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/cache"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AnalyticsTestSuite struct {
	BaseSuite
}

func TestAnalyticsSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(AnalyticsTestSuite))
}

func (s *AnalyticsTestSuite) TestGetMovieAnalytics() {
	scenarios := []Scenario{
		{
			Name:             "returns zeros before any booking",
			Method:           "GET",
			URL:              "/analytics/movies/1?startDate=2025-06-01&endDate=2025-06-02",
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"movieId": 1, "totalTickets": 0, "totalGmv": 0}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetState(t, app)
			},
		},
		{
			Name:             "counts tickets and revenue after bookings",
			Method:           "GET",
			URL:              "/analytics/movies/1?startDate=2025-06-01&endDate=2025-06-02",
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"movieId": 1, "totalTickets": 4, "totalGmv": 46}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				book(t, app, `{"showId": 1, "seatIds": [1, 2]}`)
				book(t, app, `{"showId": 2, "seatIds": [5]}`)
				book(t, app, `{"showId": 3, "seatIds": [4]}`)
			},
		},
		{
			Name:             "limits the totals to the date range",
			Method:           "GET",
			URL:              "/analytics/movies/1?startDate=2025-06-01&endDate=2025-06-01",
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"movieId": 1, "totalTickets": 3, "totalGmv": 34}`,
		},
		{
			Name:             "does not count other movies",
			Method:           "GET",
			URL:              "/analytics/movies/2?startDate=2025-06-01&endDate=2025-06-02",
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"movieId": 2, "totalTickets": 0, "totalGmv": 0}`,
		},
		{
			Name:             "returns zeros for an unknown movie",
			Method:           "GET",
			URL:              "/analytics/movies/999?startDate=2025-06-01&endDate=2025-06-02",
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"movieId": 999, "totalTickets": 0, "totalGmv": 0}`,
		},
		{
			Name:             "rejects a start date after the end date",
			Method:           "GET",
			URL:              "/analytics/movies/1?startDate=2025-06-03&endDate=2025-06-01",
			ExpectedStatus:   http.StatusBadRequest,
			ExpectedResponse: `{"message": "start date must not be after end date"}`,
		},
		{
			Name:             "rejects a missing date",
			Method:           "GET",
			URL:              "/analytics/movies/1?startDate=2025-06-01",
			ExpectedStatus:   http.StatusBadRequest,
			ExpectedResponse: `{"message": "invalid value for parameter endDate"}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *AnalyticsTestSuite) TestCachedAnalyticsAreInvalidatedByBookings() {
	resetState(s.T(), s.app)

	url := fmt.Sprintf("/analytics/movies/%d?startDate=2025-06-01&endDate=2025-06-01", TestMovieId)

	first := Scenario{
		Name:             "first read fills the cache",
		Method:           "GET",
		URL:              url,
		ExpectedStatus:   http.StatusOK,
		ExpectedResponse: `{"movieId": 1, "totalTickets": 0, "totalGmv": 0}`,
		AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
			keys, err := app.RedisClient.Keys(context.Background(), "analytics:movie:1:*").Result()
			require.NoError(t, err)
			assert.NotEmpty(t, keys)
		},
	}
	first.Run(s.T(), s.app)

	book(s.T(), s.app, `{"showId": 1, "seatIds": [3]}`)

	second := Scenario{
		Name:             "read after booking sees the new ticket",
		Method:           "GET",
		URL:              url,
		ExpectedStatus:   http.StatusOK,
		ExpectedResponse: `{"movieId": 1, "totalTickets": 1, "totalGmv": 12}`,
	}
	second.Run(s.T(), s.app)
}

func (s *AnalyticsTestSuite) TestResultComputedBeforeInvalidationIsNotServed() {
	resetState(s.T(), s.app)

	ctx := context.Background()
	analyticsCache := cache.NewAnalyticsCache(s.app.RedisClient, time.Minute)
	dates := domain.DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	cached, version, err := analyticsCache.Get(ctx, TestMovieId, dates)
	s.Require().NoError(err)
	s.Require().Nil(cached)

	s.Require().NoError(analyticsCache.Invalidate(ctx, TestMovieId))

	stale := &domain.MovieAnalytics{MovieID: TestMovieId, TotalTickets: 0, TotalGmv: decimal.Zero}
	s.Require().NoError(analyticsCache.Set(ctx, stale, dates, version))

	cached, current, err := analyticsCache.Get(ctx, TestMovieId, dates)
	s.Require().NoError(err)
	s.Nil(cached)
	s.Equal(version+1, current)
}

func book(t testing.TB, app *TestApp, body string) {
	t.Helper()

	req, err := prepareRequest("POST", "/bookings", jsonBody(body), nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *AnalyticsTestSuite) TestSumsPricePerBookedSeat() {
	resetState(s.T(), s.app)
	executeSQLFile(s.T(), s.app.DB, "testdata/analytics_up.sql")

	book(s.T(), s.app, `{"showId": 5, "seatIds": [5, 6]}`)
	book(s.T(), s.app, `{"showId": 6, "seatIds": [1]}`)

	scenario := Scenario{
		Name:             "two seats at 10 and one at 15",
		Method:           "GET",
		URL:              fmt.Sprintf("/analytics/movies/%d?startDate=2025-07-01&endDate=2025-07-01", TestOtherMovieId),
		ExpectedStatus:   http.StatusOK,
		ExpectedResponse: `{"movieId": 2, "totalTickets": 3, "totalGmv": 35}`,
	}
	scenario.Run(s.T(), s.app)
}
