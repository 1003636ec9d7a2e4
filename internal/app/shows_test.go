package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/api"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/mocks"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ShowsTestSuite struct {
	suite.Suite
	app      *Application
	showRepo *mocks.MockShowRepo
}

func (s *ShowsTestSuite) SetupTest() {
	s.showRepo = &mocks.MockShowRepo{}
	s.app = newTestApplication(func(a *Application) {
		a.showRepo = s.showRepo
	})
}

func TestShowsTestSuite(t *testing.T) {
	suite.Run(t, new(ShowsTestSuite))
}

func (s *ShowsTestSuite) TestCreateShow() {
	showTime := time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           any
		createFunc     func(context.Context, *domain.Show) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "creates show",
			body: api.CreateShowRequest{ShowTime: showTime, Price: decimal.RequireFromString("12.50"), MovieId: 1, HallId: 2},
			createFunc: func(ctx context.Context, show *domain.Show) error {
				show.ID = 8
				return nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:           "negative price",
			body:           api.CreateShowRequest{ShowTime: showTime, Price: decimal.NewFromInt(-1), MovieId: 1, HallId: 2},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: domain.ErrNegativePrice.Error(),
		},
		{
			name:           "missing movie",
			body:           api.CreateShowRequest{ShowTime: showTime, Price: decimal.NewFromInt(10), HallId: 2},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "unknown movie or hall",
			body: api.CreateShowRequest{ShowTime: showTime, Price: decimal.NewFromInt(10), MovieId: 1, HallId: 99},
			createFunc: func(ctx context.Context, show *domain.Show) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "movie or hall not found",
		},
		{
			name: "database error",
			body: api.CreateShowRequest{ShowTime: showTime, Price: decimal.NewFromInt(10), MovieId: 1, HallId: 2},
			createFunc: func(ctx context.Context, show *domain.Show) error {
				return errors.New("insert failed")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.showRepo.CreateFunc = tt.createFunc

			w, r := executeRequest(s.T(), http.MethodPost, "/shows", tt.body)

			s.app.CreateShow(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var got api.Show
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&got))
				s.Equal(8, got.Id)
				s.True(showTime.Equal(got.ShowTime))
				s.True(decimal.RequireFromString("12.50").Equal(got.Price))
				return
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *ShowsTestSuite) TestGetShows() {
	s.showRepo.GetAllFunc = func(ctx context.Context, pagination domain.Pagination) ([]domain.Show, *domain.Metadata, error) {
		return []domain.Show{{
			ID:       1,
			MovieID:  2,
			HallID:   3,
			ShowTime: time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC),
			Price:    decimal.NewFromInt(9),
		}}, domain.NewMetadata(1, pagination.Page, pagination.PageSize), nil
	}

	w, r := executeRequest(s.T(), http.MethodGet, "/shows?page=1&pageSize=20", nil)

	s.app.GetShows(w, r, api.ListParams{Page: ptr(1), PageSize: ptr(20)})

	s.Equal(http.StatusOK, w.Code)

	var got api.ShowListResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&got))
	s.Require().Len(got.Shows, 1)
	s.Equal(2, got.Shows[0].MovieId)
	s.Equal(20, got.Metadata.PageSize)
}
