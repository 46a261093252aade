package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
)

// Valid reports whether s is a member of the closed status set.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Final reports whether s permits no further transitions.
func (s BookingStatus) Final() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

type Booking struct {
	ID           int           `json:"booking_id"`
	HotelID      int           `json:"hotel_id"`
	RoomID       int           `json:"room_id"`
	UserID       string        `json:"user_id"`
	CheckInDate  time.Time     `json:"check_in_date"`
	CheckOutDate time.Time     `json:"check_out_date"`
	TotalPrice   float64       `json:"total_price"`
	Status       BookingStatus `json:"booking_status"`
	CreatedAt    time.Time     `json:"created_at"`
}
