package getHotelBookings

import (
	"net/http"
	"strconv"

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HotelBookingsGetter
type HotelBookingsGetter interface {
	GetBookingsByHotel(hotelID int) ([]models.Booking, error)
}

func New(log *slog.Logger, bookingsGetter HotelBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getHotelBookings.New"

		log = log.With(slog.String("op", op))

		hotelIDStr := chi.URLParam(r, "hotelID")
		if hotelIDStr == "" {
			log.Error("hotel id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("hotel id is required"))
			return
		}

		hotelID, err := strconv.Atoi(hotelIDStr)
		if err != nil {
			log.Error("invalid hotel id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid hotel id format"))
			return
		}

		log = log.With(slog.Int("hotel_id", hotelID))

		bookings, err := bookingsGetter.GetBookingsByHotel(hotelID)
		if err != nil {
			log.Error("failed to get hotel bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings for hotel"))
			return
		}

		// An empty result reads as "not found" for this route.
		if len(bookings) == 0 {
			log.Info("no bookings found for hotel")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("no bookings found for this hotel"))
			return
		}

		log.Info("hotel bookings retrieved successfully", slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
