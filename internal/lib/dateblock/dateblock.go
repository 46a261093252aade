package dateblock

import (
	"hotelBooker/internal/models"
)

// Range is a closed interval of calendar days, formatted Y-M-D, that the
// date picker must not offer for selection.
type Range struct {
	From string `json:"from"`
	To   string `json:"to"`
}

const dayFormat = "2006-01-02"

// Excluded derives the blocked date ranges for a room from its existing
// bookings. Both ends of every booking are shifted forward by one day before
// formatting: the picker's disable-range semantics are exclusive of the
// boundary actually occupied, so the shift aligns the blocked range with the
// nights actually slept. Cancelled bookings no longer occupy their nights
// and are skipped.
func Excluded(bookings []models.Booking) []Range {
	ranges := make([]Range, 0, len(bookings))

	for _, b := range bookings {
		if b.Status == models.StatusCancelled {
			continue
		}

		ranges = append(ranges, Range{
			From: b.CheckInDate.AddDate(0, 0, 1).Format(dayFormat),
			To:   b.CheckOutDate.AddDate(0, 0, 1).Format(dayFormat),
		})
	}

	return ranges
}
