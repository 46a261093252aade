package pricing

import "time"

// Nights returns the number of billable nights between check-in and
// check-out. Both ends are truncated to calendar days first, so the count
// matches the persisted dates regardless of time-of-day components. A
// same-day stay is billed as one night.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(startOfDay(checkOut).Sub(startOfDay(checkIn)).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	return nights
}

// Total computes the booking price as price-per-night times billable nights.
func Total(pricePerNight float64, checkIn, checkOut time.Time) float64 {
	return pricePerNight * float64(Nights(checkIn, checkOut))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
