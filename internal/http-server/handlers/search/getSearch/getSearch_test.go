package getSearch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelBooker/internal/http-server/handlers/search/getSearch/mocks"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSearchHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	criteria := &models.SearchCriteria{
		Key:         "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		Destination: "Da Nang",
		CheckIn:     time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
		AdultCount:  2,
		ChildCount:  1,
	}

	testCases := []struct {
		name           string
		key            string
		mockSetup      func(mock *mocks.CriteriaGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			key:  criteria.Key,
			mockSetup: func(m *mocks.CriteriaGetter) {
				m.On("GetSearchCriteria", criteria.Key).Return(criteria, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"destination":"Da Nang"`)
				assert.Contains(t, body, `"adult_count":2`)
			},
		},
		{
			name: "Not found",
			key:  "unknown-key",
			mockSetup: func(m *mocks.CriteriaGetter) {
				m.On("GetSearchCriteria", "unknown-key").Return(nil, storage.ErrSearchNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "search criteria not found")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewCriteriaGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			router := chi.NewRouter()
			router.Get("/search/{key}", handler)

			req, err := http.NewRequest(http.MethodGet, "/search/"+tc.key, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
