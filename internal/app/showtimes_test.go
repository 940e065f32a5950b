package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Gags-1/movie-booking-backend/api"
	"github.com/Gags-1/movie-booking-backend/internal/domain"
	"github.com/Gags-1/movie-booking-backend/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ShowtimesTestSuite struct {
	suite.Suite
	app          *application
	showtimeRepo *mocks.MockShowtimeRepo
	movieRepo    *mocks.MockMovieRepo
	theaterRepo  *mocks.MockTheaterRepo
}

func (s *ShowtimesTestSuite) SetupTest() {
	s.showtimeRepo = new(mocks.MockShowtimeRepo)
	s.movieRepo = new(mocks.MockMovieRepo)
	s.theaterRepo = new(mocks.MockTheaterRepo)

	s.app = newTestApplication(func(a *application) {
		a.showtimeRepo = s.showtimeRepo
		a.movieRepo = s.movieRepo
		a.theaterRepo = s.theaterRepo
	})
}

func TestShowtimesSuite(t *testing.T) {
	suite.Run(t, new(ShowtimesTestSuite))
}

func (s *ShowtimesTestSuite) TestGetShowtimes() {
	tests := []struct {
		name           string
		url            string
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		wantCount      int
	}{
		{
			name:           "should fail on a malformed date filter",
			url:            "/showtimes?date=21-07-2026",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "Invalid date format. Use YYYY-MM-DD",
		},
		{
			name: "should pass filters through to the repository",
			url:  "/showtimes?movie_id=3&theater_id=2&date=2026-07-21&skip=5&limit=10",
			setupMocks: func() {
				s.showtimeRepo.GetAllFunc = func(ctx context.Context, filters domain.ShowtimeFilters) ([]*domain.ShowtimeDetail, error) {
					s.Equal(3, filters.MovieID)
					s.Equal(2, filters.TheaterID)
					s.Equal(5, filters.Skip)
					s.Equal(10, filters.Limit)
					s.Require().NotNil(filters.Date)
					s.Equal("2026-07-21", filters.Date.Format("2006-01-02"))

					return []*domain.ShowtimeDetail{}, nil
				}
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "should list showtimes with their relations",
			url:  "/showtimes",
			setupMocks: func() {
				s.showtimeRepo.GetAllFunc = func(ctx context.Context, filters domain.ShowtimeFilters) ([]*domain.ShowtimeDetail, error) {
					s.Equal(defaultSkip, filters.Skip)
					s.Equal(defaultLimit, filters.Limit)

					return []*domain.ShowtimeDetail{
						{
							Showtime: domain.Showtime{
								ID:           1,
								MovieID:      3,
								ScreenID:     2,
								StartTime:    time.Date(2026, 7, 21, 19, 30, 0, 0, time.UTC),
								PricePerSeat: decimal.RequireFromString("12.50"),
							},
							Movie:   domain.Movie{ID: 3, Title: "Test Movie", Rating: ptr(8.5)},
							Screen:  domain.Screen{ID: 2, TheaterID: 1, ScreenNumber: 4, SeatLayout: `["A1"]`},
							Theater: domain.Theater{ID: 1, Name: "Test Theater", Location: "Downtown"},
						},
					}, nil
				}
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodGet, tt.url, nil)

			s.app.GetShowtimes(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantCount > 0 {
				var resp []api.ShowtimeDetailResponse
				err := json.NewDecoder(w.Body).Decode(&resp)
				s.Require().NoError(err, "Failed to decode response")

				s.Len(resp, tt.wantCount)
				s.Equal("Test Movie", resp[0].Movie.Title)
				s.Require().NotNil(resp[0].Theater)
				s.Equal("Test Theater", resp[0].Theater.Name)
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

func (s *ShowtimesTestSuite) TestCreateShowtime() {
	validBody := api.ShowtimeRequest{
		MovieId:      3,
		ScreenId:     2,
		StartTime:    time.Date(2026, 7, 21, 19, 30, 0, 0, time.UTC),
		PricePerSeat: decimal.RequireFromString("12.50"),
	}

	tests := []struct {
		name           string
		body           any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "should fail when movie does not exist",
			body: validBody,
			setupMocks: func() {
				s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
					return nil, domain.ErrRecordNotFound
				}
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "Movie not found",
		},
		{
			name: "should fail when screen does not exist",
			body: validBody,
			setupMocks: func() {
				s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
					return &domain.Movie{ID: 3}, nil
				}
				s.theaterRepo.GetScreenByIdFunc = func(ctx context.Context, id int) (*domain.Screen, error) {
					return nil, domain.ErrRecordNotFound
				}
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "Screen not found",
		},
		{
			name: "should fail when the screen already has a showtime at that start",
			body: validBody,
			setupMocks: func() {
				s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
					return &domain.Movie{ID: 3}, nil
				}
				s.theaterRepo.GetScreenByIdFunc = func(ctx context.Context, id int) (*domain.Screen, error) {
					return &domain.Screen{ID: 2}, nil
				}
				s.showtimeRepo.CreateFunc = func(ctx context.Context, showtime *domain.Showtime) error {
					return domain.ErrShowtimeConflict
				}
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "another showtime is already scheduled for this screen at the same time",
		},
		{
			name: "should create the showtime",
			body: validBody,
			setupMocks: func() {
				s.movieRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Movie, error) {
					return &domain.Movie{ID: 3}, nil
				}
				s.theaterRepo.GetScreenByIdFunc = func(ctx context.Context, id int) (*domain.Screen, error) {
					return &domain.Screen{ID: 2}, nil
				}
				s.showtimeRepo.CreateFunc = func(ctx context.Context, showtime *domain.Showtime) error {
					showtime.ID = 1
					return nil
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/showtimes", tt.body)

			s.app.CreateShowtime(w, r)

			s.Equal(tt.wantStatus, w.Code)

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
