package deleteBooking

import (
	"errors"
	"net/http"
	"strconv"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
)

type BookingResponse struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	DeleteBooking(id int) error
}

func New(log *slog.Logger, booking BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.deleteBooking.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", id))

		err = booking.DeleteBooking(id)
		if err != nil {
			log.Error("failed to delete booking", sl.Err(err))

			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete booking"))
			return
		}

		log.Info("booking deleted")

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Message:  "Booking deleted successfully",
		})
	}
}
