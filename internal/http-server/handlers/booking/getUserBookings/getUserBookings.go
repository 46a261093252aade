package getUserBookings

import (
	"net/http"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserBookingsGetter
type UserBookingsGetter interface {
	GetBookingsByUser(userID string) ([]models.Booking, error)
}

func New(log *slog.Logger, bookingsGetter UserBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getUserBookings.New"

		log = log.With(slog.String("op", op))

		userID := chi.URLParam(r, "userID")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		log = log.With(slog.String("user_id", userID))

		bookings, err := bookingsGetter.GetBookingsByUser(userID)
		if err != nil {
			log.Error("failed to get user bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings for user"))
			return
		}

		if len(bookings) == 0 {
			log.Info("no bookings found for user")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("no bookings found for this user"))
			return
		}

		log.Info("user bookings retrieved successfully", slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
