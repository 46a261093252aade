package storage

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room has no available inventory")
	ErrDateConflict    = errors.New("room is already booked for overlapping dates")
	ErrStatusFinal     = errors.New("booking status can no longer be changed")
	ErrSearchNotFound  = errors.New("search criteria not found")
)
