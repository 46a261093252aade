package getExcludedDates

import (
	"net/http"
	"strconv"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/dateblock"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
)

type ExcludedDatesResponse struct {
	response.Response
	ExcludedDates []dateblock.Range `json:"excluded_dates"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsSource
type BookingsSource interface {
	GetBookingsByRoom(hotelID, roomID int) ([]models.Booking, error)
}

// New serves the blocked date ranges a date picker must disable for a room.
func New(log *slog.Logger, bookings BookingsSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getExcludedDates.New"

		log = log.With(slog.String("op", op))

		hotelID, err := strconv.Atoi(chi.URLParam(r, "hotelID"))
		if err != nil {
			log.Error("invalid hotel id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid hotel id format"))
			return
		}

		roomID, err := strconv.Atoi(chi.URLParam(r, "roomID"))
		if err != nil {
			log.Error("invalid room id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room id format"))
			return
		}

		log = log.With(slog.Int("hotel_id", hotelID), slog.Int("room_id", roomID))

		existing, err := bookings.GetBookingsByRoom(hotelID, roomID)
		if err != nil {
			log.Error("failed to get room bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get excluded dates"))
			return
		}

		excluded := dateblock.Excluded(existing)

		log.Info("excluded dates computed", slog.Int("count", len(excluded)))

		render.JSON(w, r, ExcludedDatesResponse{
			Response:      response.OK(),
			ExcludedDates: excluded,
		})
	}
}
