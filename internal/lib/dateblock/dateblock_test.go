package dateblock

import (
	"testing"
	"time"

	"hotelBooker/internal/models"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExcluded(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		bookings []models.Booking
		expected []Range
	}{
		{
			name: "single booking shifts both ends by one day",
			bookings: []models.Booking{
				{
					CheckInDate:  day(2024, time.June, 10),
					CheckOutDate: day(2024, time.June, 15),
					Status:       models.StatusPending,
				},
			},
			expected: []Range{
				{From: "2024-06-11", To: "2024-06-16"},
			},
		},
		{
			name: "month boundary",
			bookings: []models.Booking{
				{
					CheckInDate:  day(2024, time.June, 28),
					CheckOutDate: day(2024, time.June, 30),
					Status:       models.StatusConfirmed,
				},
			},
			expected: []Range{
				{From: "2024-06-29", To: "2024-07-01"},
			},
		},
		{
			name: "cancelled bookings are skipped",
			bookings: []models.Booking{
				{
					CheckInDate:  day(2024, time.June, 10),
					CheckOutDate: day(2024, time.June, 15),
					Status:       models.StatusCancelled,
				},
				{
					CheckInDate:  day(2024, time.July, 1),
					CheckOutDate: day(2024, time.July, 3),
					Status:       models.StatusConfirmed,
				},
			},
			expected: []Range{
				{From: "2024-07-02", To: "2024-07-04"},
			},
		},
		{
			name: "same-day booking",
			bookings: []models.Booking{
				{
					CheckInDate:  day(2024, time.June, 10),
					CheckOutDate: day(2024, time.June, 10),
					Status:       models.StatusPending,
				},
			},
			expected: []Range{
				{From: "2024-06-11", To: "2024-06-11"},
			},
		},
		{
			name:     "no bookings",
			bookings: nil,
			expected: []Range{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Excluded(tc.bookings))
		})
	}
}
