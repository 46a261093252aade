package updateBooking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
)

type BookingRequest struct {
	HotelID       int       `json:"hotel_id" validate:"required"`
	RoomID        int       `json:"room_id" validate:"required"`
	UserID        string    `json:"user_id" validate:"required"`
	CheckInDate   time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate  time.Time `json:"check_out_date" validate:"required"`
	TotalPrice    float64   `json:"total_price" validate:"required"`
	BookingStatus string    `json:"booking_status" validate:"required,oneof=Pending Confirmed Cancelled"`
}

type BookingResponse struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBooking(id int, b models.Booking) error
}

func New(log *slog.Logger, booking BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", id))

		var req BookingRequest

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

		err = booking.UpdateBooking(id, models.Booking{
			HotelID:      req.HotelID,
			RoomID:       req.RoomID,
			UserID:       req.UserID,
			CheckInDate:  req.CheckInDate,
			CheckOutDate: req.CheckOutDate,
			TotalPrice:   req.TotalPrice,
			Status:       models.BookingStatus(req.BookingStatus),
		})
		if err != nil {
			log.Error("failed to update booking", sl.Err(err))

			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		log.Info("booking updated")

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Message:  "Booking updated successfully",
		})
	}
}
