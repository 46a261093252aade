package getBooking

import (
	"errors"
	"net/http"
	"strconv"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
)

type BookingInfoResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	GetBooking(id int) (*models.Booking, error)
}

func New(log *slog.Logger, bookingGetter BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", id))

		booking, err := bookingGetter.GetBooking(id)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		log.Info("booking retrieved successfully")

		render.JSON(w, r, BookingInfoResponse{
			Response: response.OK(),
			Booking:  booking,
		})
	}
}
