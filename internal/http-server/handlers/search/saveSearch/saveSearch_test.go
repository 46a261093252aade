package saveSearch

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelBooker/internal/http-server/handlers/search/saveSearch/mocks"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validBody = `{
	"destination": "Da Nang",
	"check_in": "2024-06-10T00:00:00Z",
	"check_out": "2024-06-15T00:00:00Z",
	"adult_count": 2,
	"child_count": 1
}`

func TestSaveSearchHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.CriteriaSaver)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.CriteriaSaver) {
				m.On("SaveSearchCriteria", mock.AnythingOfType("models.SearchCriteria")).
					Return("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","key":"9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"}`,
		},
		{
			name:           "Missing destination",
			requestBody:    `{"check_in": "2024-06-10T00:00:00Z", "check_out": "2024-06-15T00:00:00Z", "adult_count": 2}`,
			mockSetup:      func(m *mocks.CriteriaSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Destination")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.CriteriaSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Storage error",
			requestBody: validBody,
			mockSetup: func(m *mocks.CriteriaSaver) {
				m.On("SaveSearchCriteria", mock.AnythingOfType("models.SearchCriteria")).
					Return("", errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to save search criteria"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSaver := mocks.NewCriteriaSaver(t)
			tc.mockSetup(mockSaver)

			handler := New(logger, mockSaver)

			req, err := http.NewRequest(http.MethodPost, "/search", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
