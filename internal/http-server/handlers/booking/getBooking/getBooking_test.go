package getBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelBooker/internal/http-server/handlers/booking/getBooking/mocks"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	booking := &models.Booking{
		ID:           42,
		HotelID:      3,
		RoomID:       7,
		UserID:       "user123",
		CheckInDate:  time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
		TotalPrice:   2500000,
		Status:       models.StatusConfirmed,
	}

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(mock *mocks.BookingGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:      "Success",
			bookingID: "42",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("GetBooking", 42).Return(booking, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"booking_id":42`)
				assert.Contains(t, body, `"booking_status":"Confirmed"`)
			},
		},
		{
			name:           "Invalid id format",
			bookingID:      "abc",
			mockSetup:      func(m *mocks.BookingGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid booking id format")
			},
		},
		{
			name:      "Not found",
			bookingID: "99",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("GetBooking", 99).Return(nil, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "booking not found")
			},
		},
		{
			name:      "Storage error",
			bookingID: "42",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("GetBooking", 42).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to get booking")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewBookingGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			router := chi.NewRouter()
			router.Get("/bookings/{id}", handler)

			req, err := http.NewRequest(http.MethodGet, "/bookings/"+tc.bookingID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
