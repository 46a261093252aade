package updateStatus

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
	"github.com/go-playground/validator/v10"
	"log/slog"
)

// The status value comes from the request body, not the trailing path
// segment; the path keeps both segments for client compatibility.
type StatusRequest struct {
	BookingStatus string `json:"booking_status" validate:"required,oneof=Pending Confirmed Cancelled"`
}

type StatusResponse struct {
	response.Response
	BookingID     int    `json:"booking_id"`
	BookingStatus string `json:"booking_status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusUpdater
type StatusUpdater interface {
	UpdateBookingStatus(id int, status models.BookingStatus) error
}

func New(log *slog.Logger, booking StatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateStatus.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", id))

		var req StatusRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = booking.UpdateBookingStatus(id, models.BookingStatus(req.BookingStatus))
		if err != nil {
			log.Error("failed to update booking status", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrStatusFinal):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking status can no longer be changed"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking status"))
			}
			return
		}

		log.Info("booking status updated", slog.String("booking_status", req.BookingStatus))

		render.JSON(w, r, StatusResponse{
			Response:      response.OK(),
			BookingID:     id,
			BookingStatus: req.BookingStatus,
		})
	}
}
