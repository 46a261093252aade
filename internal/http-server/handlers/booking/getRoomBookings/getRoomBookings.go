package getRoomBookings

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomBookingsGetter
type RoomBookingsGetter interface {
	GetBookingsByRoom(hotelID, roomID int) ([]models.Booking, error)
}

func New(log *slog.Logger, bookingsGetter RoomBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getRoomBookings.New"

		log = log.With(slog.String("op", op))

		hotelID, roomID, ok := roomParams(w, r, log)
		if !ok {
			return
		}

		log = log.With(slog.Int("hotel_id", hotelID), slog.Int("room_id", roomID))

		bookings, err := bookingsGetter.GetBookingsByRoom(hotelID, roomID)
		if err != nil {
			log.Error("failed to get room bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings for room"))
			return
		}

		log.Info("room bookings retrieved successfully", slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}

// roomParams extracts and validates the hotelID/roomID route parameters,
// writing the error response itself when they are malformed.
func roomParams(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int, int, bool) {
	hotelIDStr := chi.URLParam(r, "hotelID")
	roomIDStr := chi.URLParam(r, "roomID")
	if hotelIDStr == "" || roomIDStr == "" {
		log.Error("hotel id and room id are required")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("hotel id and room id are required"))
		return 0, 0, false
	}

	hotelID, err := strconv.Atoi(hotelIDStr)
	if err != nil {
		log.Error("invalid hotel id format", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid hotel id format"))
		return 0, 0, false
	}

	roomID, err := strconv.Atoi(roomIDStr)
	if err != nil {
		log.Error("invalid room id format", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid room id format"))
		return 0, 0, false
	}

	return hotelID, roomID, true
}
