package getAllBookings

import (
	"net/http"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/render"
	"log/slog"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	GetAllBookings() ([]models.Booking, error)
}

func New(log *slog.Logger, bookingsGetter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log = log.With(slog.String("op", op))

		bookings, err := bookingsGetter.GetAllBookings()
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
