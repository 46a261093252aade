package createBooking

import (
	"errors"
	"net/http"
	"time"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

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
	BookingID int `json:"booking_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(b models.Booking) (int, error)
}

func New(log *slog.Logger, booking BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
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

		if req.CheckOutDate.Before(req.CheckInDate) {
			log.Error("check-out date before check-in date")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("check_out_date must not be before check_in_date"))
			return
		}

		bookingID, err := booking.CreateBooking(models.Booking{
			HotelID:      req.HotelID,
			RoomID:       req.RoomID,
			UserID:       req.UserID,
			CheckInDate:  req.CheckInDate,
			CheckOutDate: req.CheckOutDate,
			TotalPrice:   req.TotalPrice,
			Status:       models.BookingStatus(req.BookingStatus),
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrRoomNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
			case errors.Is(err, storage.ErrRoomUnavailable):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("room is sold out"))
			case errors.Is(err, storage.ErrDateConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("room is already booked for these dates"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int("booking_id", bookingID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, BookingResponse{
			Response:  response.OK(),
			BookingID: bookingID,
		})
	}
}
