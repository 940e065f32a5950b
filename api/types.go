// Package api defines the request and response types of the HTTP surface.
// Seat sets and seat layouts travel as serialized JSON array-of-strings text
// inside string fields so the stored wire format round-trips exactly.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"request_id,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"system_info"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UserResponse struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MovieRequest struct {
	Title     string   `json:"title" validate:"required,max=200"`
	Genre     string   `json:"genre" validate:"required,max=50"`
	Language  string   `json:"language" validate:"required,max=50"`
	Duration  int      `json:"duration" validate:"required,gt=0"`
	Rating    *float64 `json:"rating,omitempty"`
	PosterUrl *string  `json:"poster_url,omitempty"`
}

type MovieResponse struct {
	Id        int      `json:"id"`
	Title     string   `json:"title"`
	Genre     string   `json:"genre"`
	Language  string   `json:"language"`
	Duration  int      `json:"duration"`
	Rating    *float64 `json:"rating"`
	PosterUrl *string  `json:"poster_url"`
}

type TheaterRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	Location string `json:"location" validate:"required,max=200"`
}

type TheaterResponse struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type ScreenRequest struct {
	ScreenNumber int    `json:"screen_number" validate:"required,gt=0"`
	SeatLayout   string `json:"seat_layout" validate:"required"`
}

type ScreenResponse struct {
	Id           int    `json:"id"`
	TheaterId    int    `json:"theater_id"`
	ScreenNumber int    `json:"screen_number"`
	SeatLayout   string `json:"seat_layout"`
}

type ShowtimeRequest struct {
	MovieId      int             `json:"movie_id" validate:"required,gt=0"`
	ScreenId     int             `json:"screen_id" validate:"required,gt=0"`
	StartTime    time.Time       `json:"start_time" validate:"required"`
	PricePerSeat decimal.Decimal `json:"price_per_seat" validate:"required"`
}

type ShowtimeResponse struct {
	Id           int             `json:"id"`
	MovieId      int             `json:"movie_id"`
	ScreenId     int             `json:"screen_id"`
	StartTime    time.Time       `json:"start_time"`
	PricePerSeat decimal.Decimal `json:"price_per_seat"`
}

type ShowtimeDetailResponse struct {
	ShowtimeResponse
	Movie   MovieResponse    `json:"movie"`
	Screen  ScreenResponse   `json:"screen"`
	Theater *TheaterResponse `json:"theater,omitempty"`
}

type AvailableSeatsResponse struct {
	ShowtimeId     int      `json:"showtime_id"`
	TotalSeats     int      `json:"total_seats"`
	BookedSeats    []string `json:"booked_seats"`
	AvailableSeats []string `json:"available_seats"`
	AvailableCount int      `json:"available_count"`
}

type BookingRequest struct {
	ShowtimeId  int    `json:"showtime_id" validate:"required,gt=0"`
	SeatsBooked string `json:"seats_booked" validate:"required"`
}

type BookingResponse struct {
	Id          int             `json:"id"`
	UserId      int             `json:"user_id"`
	ShowtimeId  int             `json:"showtime_id"`
	SeatsBooked string          `json:"seats_booked"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      string          `json:"status"`
}

type BookingDetailResponse struct {
	BookingResponse
	Showtime ShowtimeDetailResponse `json:"showtime"`
}

type PaymentResponse struct {
	PaymentId   int             `json:"payment_id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	ProviderRef string          `json:"provider_ref,omitempty"`
	Message     string          `json:"message,omitempty"`
}

type PaymentConfirmResponse struct {
	Message       string `json:"message"`
	Status        string `json:"status"`
	BookingId     int    `json:"booking_id"`
	BookingStatus string `json:"booking_status"`
}

type PaymentDetailResponse struct {
	Id            int              `json:"id"`
	BookingId     int              `json:"booking_id"`
	Amount        decimal.Decimal  `json:"amount"`
	PaymentStatus string           `json:"payment_status"`
	Booking       *BookingResponse `json:"booking,omitempty"`
}
