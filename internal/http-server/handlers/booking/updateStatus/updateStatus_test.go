package updateStatus

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelBooker/internal/http-server/handlers/booking/updateStatus/mocks"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		path           string
		requestBody    string
		mockSetup      func(mock *mocks.StatusUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Confirm pending booking",
			path:        "/bookings/status/42/Confirmed",
			requestBody: `{"booking_status": "Confirmed"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateBookingStatus", 42, models.StatusConfirmed).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","booking_id":42,"booking_status":"Confirmed"}`,
		},
		{
			name:        "Cancel pending booking",
			path:        "/bookings/status/42/Cancelled",
			requestBody: `{"booking_status": "Cancelled"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateBookingStatus", 42, models.StatusCancelled).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","booking_id":42,"booking_status":"Cancelled"}`,
		},
		{
			name:        "Status comes from body, not path",
			path:        "/bookings/status/42/Cancelled",
			requestBody: `{"booking_status": "Confirmed"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateBookingStatus", 42, models.StatusConfirmed).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","booking_id":42,"booking_status":"Confirmed"}`,
		},
		{
			name:           "Unknown status rejected",
			path:           "/bookings/status/42/Confirmed",
			requestBody:    `{"booking_status": "Archived"}`,
			mockSetup:      func(m *mocks.StatusUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "BookingStatus")
			},
		},
		{
			name:           "Missing status rejected",
			path:           "/bookings/status/42/Confirmed",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.StatusUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "BookingStatus")
			},
		},
		{
			name:        "Not found",
			path:        "/bookings/status/99/Confirmed",
			requestBody: `{"booking_status": "Confirmed"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateBookingStatus", 99, models.StatusConfirmed).Return(storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:        "Final status cannot change",
			path:        "/bookings/status/42/Pending",
			requestBody: `{"booking_status": "Pending"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateBookingStatus", 42, models.StatusPending).Return(storage.ErrStatusFinal)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"booking status can no longer be changed"}`,
		},
		{
			name:        "Internal server error",
			path:        "/bookings/status/42/Confirmed",
			requestBody: `{"booking_status": "Confirmed"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateBookingStatus", 42, models.StatusConfirmed).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update booking status"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewStatusUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			router := chi.NewRouter()
			router.Patch("/bookings/status/{id}/{bookingStatus}", handler)

			req, err := http.NewRequest(http.MethodPatch, tc.path, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
