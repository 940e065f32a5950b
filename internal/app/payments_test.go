package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Gags-1/movie-booking-backend/api"
	"github.com/Gags-1/movie-booking-backend/internal/domain"
	"github.com/Gags-1/movie-booking-backend/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentsTestSuite struct {
	suite.Suite
	app             *application
	bookingRepo     *mocks.MockBookingRepo
	paymentRepo     *mocks.MockPaymentRepo
	paymentProvider *mocks.MockPaymentProvider
	user            *domain.User
}

func (s *PaymentsTestSuite) SetupTest() {
	s.bookingRepo = new(mocks.MockBookingRepo)
	s.paymentRepo = new(mocks.MockPaymentRepo)
	s.paymentProvider = new(mocks.MockPaymentProvider)
	s.user = &domain.User{ID: 42, Email: "alice@example.com", Role: domain.RoleUser}

	s.app = newTestApplication(func(a *application) {
		a.bookingRepo = s.bookingRepo
		a.paymentRepo = s.paymentRepo
		a.paymentProvider = s.paymentProvider
	})
}

func TestPaymentsSuite(t *testing.T) {
	suite.Run(t, new(PaymentsTestSuite))
}

func pendingBookingDetail() *domain.BookingDetail {
	return &domain.BookingDetail{
		Booking: domain.Booking{
			ID:         5,
			UserID:     42,
			ShowtimeID: 1,
			TotalPrice: decimal.RequireFromString("25.00"),
			Status:     domain.BookingStatusPending,
		},
	}
}

func (s *PaymentsTestSuite) TestInitiatePayment() {
	tests := []struct {
		name           string
		bookingID      string
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		checkPayment   func(resp api.PaymentResponse)
	}{
		{
			name:      "should fail when booking belongs to another user",
			bookingID: "5",
			setupMocks: func() {
				s.bookingRepo.GetByIdAndUserFunc = func(ctx context.Context, id, userId int) (*domain.BookingDetail, error) {
					return nil, domain.ErrRecordNotFound
				}
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "Booking not found",
		},
		{
			name:      "should fail when booking is cancelled",
			bookingID: "5",
			setupMocks: func() {
				s.bookingRepo.GetByIdAndUserFunc = func(ctx context.Context, id, userId int) (*domain.BookingDetail, error) {
					detail := pendingBookingDetail()
					detail.Status = domain.BookingStatusCancelled
					return detail, nil
				}
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "cannot pay for a cancelled booking",
		},
		{
			name:      "should fail when payment is already completed",
			bookingID: "5",
			setupMocks: func() {
				s.bookingRepo.GetByIdAndUserFunc = func(ctx context.Context, id, userId int) (*domain.BookingDetail, error) {
					return pendingBookingDetail(), nil
				}
				s.paymentRepo.GetByBookingIdFunc = func(ctx context.Context, bookingId int) (*domain.Payment, error) {
					return &domain.Payment{ID: 9, BookingID: 5, Status: domain.PaymentStatusSuccess}, nil
				}
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "payment already completed",
		},
		{
			name:      "should return the existing pending payment idempotently",
			bookingID: "5",
			setupMocks: func() {
				s.bookingRepo.GetByIdAndUserFunc = func(ctx context.Context, id, userId int) (*domain.BookingDetail, error) {
					return pendingBookingDetail(), nil
				}
				s.paymentRepo.GetByBookingIdFunc = func(ctx context.Context, bookingId int) (*domain.Payment, error) {
					return &domain.Payment{
						ID:          9,
						BookingID:   5,
						Amount:      decimal.RequireFromString("25.00"),
						Status:      domain.PaymentStatusPending,
						ProviderRef: "ref-123",
					}, nil
				}
			},
			wantStatus: http.StatusOK,
			checkPayment: func(resp api.PaymentResponse) {
				s.Equal(9, resp.PaymentId)
				s.Equal("pending", resp.Status)
				s.Equal("ref-123", resp.ProviderRef)
				s.Equal("Payment already initiated", resp.Message)
			},
		},
		{
			name:      "should create a pending payment with the booking total",
			bookingID: "5",
			setupMocks: func() {
				s.bookingRepo.GetByIdAndUserFunc = func(ctx context.Context, id, userId int) (*domain.BookingDetail, error) {
					return pendingBookingDetail(), nil
				}
				s.paymentRepo.GetByBookingIdFunc = func(ctx context.Context, bookingId int) (*domain.Payment, error) {
					return nil, domain.ErrRecordNotFound
				}
				s.paymentProvider.InitiatePaymentFunc = func(booking *domain.Booking) (string, error) {
					return "ref-456", nil
				}
				s.paymentRepo.CreateFunc = func(ctx context.Context, payment *domain.Payment) error {
					payment.ID = 10
					return nil
				}
			},
			wantStatus: http.StatusCreated,
			checkPayment: func(resp api.PaymentResponse) {
				s.Equal(10, resp.PaymentId)
				s.Equal("pending", resp.Status)
				s.Equal("ref-456", resp.ProviderRef)
				s.True(resp.Amount.Equal(decimal.RequireFromString("25.00")))
			},
		},
		{
			name:      "should fail when the provider errors",
			bookingID: "5",
			setupMocks: func() {
				s.bookingRepo.GetByIdAndUserFunc = func(ctx context.Context, id, userId int) (*domain.BookingDetail, error) {
					return pendingBookingDetail(), nil
				}
				s.paymentRepo.GetByBookingIdFunc = func(ctx context.Context, bookingId int) (*domain.Payment, error) {
					return nil, domain.ErrRecordNotFound
				}
				s.paymentProvider.InitiatePaymentFunc = func(booking *domain.Booking) (string, error) {
					return "", fmt.Errorf("gateway unreachable")
				}
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, fmt.Sprintf("/payments/%s/initiate", tt.bookingID), nil)
			r = withURLParams(r, map[string]string{"bookingId": tt.bookingID})
			r = withUser(s.app, r, s.user)

			s.app.InitiatePayment(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.checkPayment != nil {
				var resp api.PaymentResponse
				err := json.NewDecoder(w.Body).Decode(&resp)
				s.Require().NoError(err, "Failed to decode response")

				tt.checkPayment(resp)
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

func (s *PaymentsTestSuite) TestConfirmPayment() {
	tests := []struct {
		name           string
		paymentID      string
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		checkResponse  func(resp api.PaymentConfirmResponse)
	}{
		{
			name:      "should fail when payment does not exist",
			paymentID: "9",
			setupMocks: func() {
				s.paymentRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Payment, error) {
					return nil, domain.ErrRecordNotFound
				}
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "Payment not found",
		},
		{
			name:      "should fail when payment belongs to another user",
			paymentID: "9",
			setupMocks: func() {
				s.paymentRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Payment, error) {
					return &domain.Payment{ID: 9, BookingID: 5, Status: domain.PaymentStatusPending}, nil
				}
				s.bookingRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Booking, error) {
					return &domain.Booking{ID: 5, UserID: 77}, nil
				}
			},
			wantStatus:     http.StatusForbidden,
			wantErrMessage: ErrForbidden,
		},
		{
			name:      "should fail when payment is already completed",
			paymentID: "9",
			setupMocks: func() {
				s.paymentRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Payment, error) {
					return &domain.Payment{ID: 9, BookingID: 5, Status: domain.PaymentStatusSuccess}, nil
				}
				s.bookingRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Booking, error) {
					return &domain.Booking{ID: 5, UserID: 42}, nil
				}
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "payment already completed",
		},
		{
			name:      "should refuse to confirm a cancelled booking",
			paymentID: "9",
			setupMocks: func() {
				s.paymentRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Payment, error) {
					return &domain.Payment{ID: 9, BookingID: 5, Status: domain.PaymentStatusPending}, nil
				}
				s.bookingRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Booking, error) {
					return &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingStatusCancelled}, nil
				}
				s.paymentRepo.ConfirmFunc = func(ctx context.Context, payment *domain.Payment) error {
					return domain.ErrBookingCancelled
				}
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "cannot pay for a cancelled booking",
		},
		{
			name:      "should confirm payment and booking together",
			paymentID: "9",
			setupMocks: func() {
				s.paymentRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Payment, error) {
					return &domain.Payment{ID: 9, BookingID: 5, Status: domain.PaymentStatusPending}, nil
				}
				s.bookingRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Booking, error) {
					return &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingStatusPending}, nil
				}
				s.paymentRepo.ConfirmFunc = func(ctx context.Context, payment *domain.Payment) error {
					payment.Status = domain.PaymentStatusSuccess
					return nil
				}
			},
			wantStatus: http.StatusOK,
			checkResponse: func(resp api.PaymentConfirmResponse) {
				s.Equal("success", resp.Status)
				s.Equal(5, resp.BookingId)
				s.Equal("confirmed", resp.BookingStatus)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, fmt.Sprintf("/payments/%s/confirm", tt.paymentID), nil)
			r = withURLParams(r, map[string]string{"paymentId": tt.paymentID})
			r = withUser(s.app, r, s.user)

			s.app.ConfirmPayment(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.checkResponse != nil {
				var resp api.PaymentConfirmResponse
				err := json.NewDecoder(w.Body).Decode(&resp)
				s.Require().NoError(err, "Failed to decode response")

				tt.checkResponse(resp)
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

func (s *PaymentsTestSuite) TestGetPayment() {
	tests := []struct {
		name           string
		paymentID      string
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:      "should fail when payment does not exist",
			paymentID: "9",
			setupMocks: func() {
				s.paymentRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Payment, error) {
					return nil, domain.ErrRecordNotFound
				}
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "Payment not found",
		},
		{
			name:      "should fail when payment belongs to another user",
			paymentID: "9",
			setupMocks: func() {
				s.paymentRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Payment, error) {
					return &domain.Payment{ID: 9, BookingID: 5}, nil
				}
				s.bookingRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Booking, error) {
					return &domain.Booking{ID: 5, UserID: 77}, nil
				}
			},
			wantStatus:     http.StatusForbidden,
			wantErrMessage: ErrForbidden,
		},
		{
			name:      "should return the payment with its booking",
			paymentID: "9",
			setupMocks: func() {
				s.paymentRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Payment, error) {
					return &domain.Payment{
						ID:        9,
						BookingID: 5,
						Amount:    decimal.RequireFromString("25.00"),
						Status:    domain.PaymentStatusSuccess,
					}, nil
				}
				s.bookingRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Booking, error) {
					return &domain.Booking{ID: 5, UserID: 42, Status: domain.BookingStatusConfirmed}, nil
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodGet, fmt.Sprintf("/payments/%s", tt.paymentID), nil)
			r = withURLParams(r, map[string]string{"paymentId": tt.paymentID})
			r = withUser(s.app, r, s.user)

			s.app.GetPayment(w, r)

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
