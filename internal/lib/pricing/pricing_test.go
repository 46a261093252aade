package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "five nights",
			checkIn:  day(2024, time.June, 10),
			checkOut: day(2024, time.June, 15),
			expected: 5,
		},
		{
			name:     "same day counts as one night",
			checkIn:  day(2024, time.June, 10),
			checkOut: day(2024, time.June, 10),
			expected: 1,
		},
		{
			name:     "one night",
			checkIn:  day(2024, time.June, 10),
			checkOut: day(2024, time.June, 11),
			expected: 1,
		},
		{
			name:     "midday check-in still spans two calendar nights",
			checkIn:  time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC),
			checkOut: day(2024, time.June, 12),
			expected: 2,
		},
		{
			name:     "time-of-day on both ends is ignored",
			checkIn:  time.Date(2024, time.June, 10, 23, 30, 0, 0, time.UTC),
			checkOut: time.Date(2024, time.June, 11, 0, 15, 0, 0, time.UTC),
			expected: 1,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Nights(tc.checkIn, tc.checkOut))
		})
	}
}

func TestTotal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2500000.0, Total(500000, day(2024, time.June, 10), day(2024, time.June, 15)))

	// A same-day stay is still charged for one night.
	assert.Equal(t, 500000.0, Total(500000, day(2024, time.June, 10), day(2024, time.June, 10)))
}
