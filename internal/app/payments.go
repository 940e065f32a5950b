package app

import (
	"errors"
	"net/http"

	"github.com/Gags-1/movie-booking-backend/api"
	"github.com/Gags-1/movie-booking-backend/internal/domain"
)

// InitiatePayment creates the booking's payment record or returns the
// existing one. Re-initiating a pending payment is idempotent; a completed
// payment cannot be initiated again.
func (app *application) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	bookingId, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	detail, err := app.bookingRepo.GetByIdAndUser(r.Context(), bookingId, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Booking not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	if detail.Status == domain.BookingStatusCancelled {
		app.badRequestResponse(w, r, domain.ErrBookingCancelled)
		return
	}

	existing, err := app.paymentRepo.GetByBookingId(r.Context(), bookingId)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	if existing != nil {
		if existing.Status == domain.PaymentStatusSuccess {
			app.badRequestResponse(w, r, domain.ErrPaymentCompleted)
			return
		}

		resp := api.PaymentResponse{
			PaymentId:   existing.ID,
			Amount:      existing.Amount,
			Status:      string(existing.Status),
			ProviderRef: existing.ProviderRef,
			Message:     "Payment already initiated",
		}

		err = app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	ref, err := app.paymentProvider.InitiatePayment(&detail.Booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	payment := domain.Payment{
		BookingID:   bookingId,
		Amount:      detail.TotalPrice,
		Status:      domain.PaymentStatusPending,
		ProviderRef: ref,
	}

	err = app.paymentRepo.Create(r.Context(), &payment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PaymentResponse{
		PaymentId:   payment.ID,
		Amount:      payment.Amount,
		Status:      string(payment.Status),
		ProviderRef: payment.ProviderRef,
		Message:     "Payment initiated",
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ConfirmPayment marks the payment successful and confirms its booking in one
// step. Confirmation is trusted as-is; there is no gateway callback.
func (app *application) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	paymentId, err := app.readIDParam(r, "paymentId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	payment, err := app.paymentRepo.GetById(r.Context(), paymentId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Payment not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), payment.BookingID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if booking.UserID != user.ID {
		app.forbiddenResponse(w, r)
		return
	}

	if payment.Status == domain.PaymentStatusSuccess {
		app.badRequestResponse(w, r, domain.ErrPaymentCompleted)
		return
	}

	err = app.paymentRepo.Confirm(r.Context(), payment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingCancelled):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithMsg(w, r, "Booking not found")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PaymentConfirmResponse{
		Message:       "Payment confirmed successfully",
		Status:        string(payment.Status),
		BookingId:     payment.BookingID,
		BookingStatus: string(domain.BookingStatusConfirmed),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetPayment(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	paymentId, err := app.readIDParam(r, "paymentId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	payment, err := app.paymentRepo.GetById(r.Context(), paymentId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithMsg(w, r, "Payment not found")
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), payment.BookingID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if booking.UserID != user.ID {
		app.forbiddenResponse(w, r)
		return
	}

	bookingResp := toBookingResponse(booking)

	resp := api.PaymentDetailResponse{
		Id:            payment.ID,
		BookingId:     payment.BookingID,
		Amount:        payment.Amount,
		PaymentStatus: string(payment.Status),
		Booking:       &bookingResp,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
