package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", app.RegisterUser)
		r.Post("/login", app.Login)
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Get("/{movieId}", app.GetMovie)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAuthentication)
			r.Use(app.requireAdmin)

			r.Post("/", app.CreateMovie)
			r.Put("/{movieId}", app.UpdateMovie)
			r.Delete("/{movieId}", app.DeleteMovie)
		})
	})

	r.Route("/theaters", func(r chi.Router) {
		r.Get("/", app.GetTheaters)
		r.Get("/{theaterId}", app.GetTheater)
		r.Get("/{theaterId}/screens", app.GetTheaterScreens)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAuthentication)
			r.Use(app.requireAdmin)

			r.Post("/", app.CreateTheater)
			r.Put("/{theaterId}", app.UpdateTheater)
			r.Delete("/{theaterId}", app.DeleteTheater)
			r.Post("/{theaterId}/screens", app.CreateScreen)
		})
	})

	r.Route("/showtimes", func(r chi.Router) {
		r.Get("/", app.GetShowtimes)
		r.Get("/{showtimeId}", app.GetShowtime)
		r.Get("/{showtimeId}/available-seats", app.GetAvailableSeats)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAuthentication)
			r.Use(app.requireAdmin)

			r.Post("/", app.CreateShowtime)
			r.Put("/{showtimeId}", app.UpdateShowtime)
			r.Delete("/{showtimeId}", app.DeleteShowtime)
		})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/", app.GetUserBookings)
		r.Post("/", app.CreateBooking)
		r.Get("/{bookingId}", app.GetBooking)
		r.Post("/{bookingId}/cancel", app.CancelBooking)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Post("/{bookingId}/initiate", app.InitiatePayment)
		r.Post("/{paymentId}/confirm", app.ConfirmPayment)
		r.Get("/{paymentId}", app.GetPayment)
	})

	return r
}
