package models

type Room struct {
	ID           int     `json:"id_room"`
	HotelID      int     `json:"hotel_id"`
	Price        float64 `json:"price"`
	Availability int     `json:"availability_status"`
}
