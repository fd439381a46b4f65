package artist_test

import (
	"fmt"
	"net/http"
	"testing"

	appartist "github.com/angristan/artist-explorer/internal/app/services/artist"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestArtistHandler_Suggest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		target         string
		expectedQuery  string
		serviceResult  []appartist.Suggestion
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing q",
			target:         "/api/suggest",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Query parameter \"q\" is required."}`,
		},
		{
			name:          "suggestions in upstream order",
			target:        "/api/suggest?q=daft+punk",
			expectedQuery: "daft punk",
			serviceResult: []appartist.Suggestion{
				{ID: "4tZwfgrHOc3mvqYlEYSvVi", Name: "Daft Punk"},
				{ID: "2", Name: "Daft Punk Tribute"},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"suggestions":[{"id":"4tZwfgrHOc3mvqYlEYSvVi","name":"Daft Punk"},{"id":"2","name":"Daft Punk Tribute"}]}`,
		},
		{
			name:           "short query",
			target:         "/api/suggest?q=a",
			expectedQuery:  "a",
			serviceResult:  []appartist.Suggestion{},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"suggestions":[]}`,
		},
		{
			name:           "upstream unavailable",
			target:         "/api/suggest?q=adele",
			expectedQuery:  "adele",
			serviceResult:  []appartist.Suggestion{},
			serviceErr:     &appartist.UpstreamError{Step: appartist.StepSuggest, Status: http.StatusServiceUnavailable},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"Spotify API error during suggestion search.","suggestions":[]}`,
		},
		{
			name:           "transport error",
			target:         "/api/suggest?q=adele",
			expectedQuery:  "adele",
			serviceErr:     fmt.Errorf("%w: timeout", appartist.ErrSpotifyClient),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error during suggestion fetch.","suggestions":[]}`,
		},
		{
			name:           "token unavailable",
			target:         "/api/suggest?q=adele",
			expectedQuery:  "adele",
			serviceResult:  []appartist.Suggestion{},
			serviceErr:     fmt.Errorf("%w: 401", appartist.ErrAuth),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Could not acquire Spotify access token.","suggestions":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockService := newHandler(t)

			if tt.expectedQuery != "" {
				mockService.On("Suggest", mock.Anything, tt.expectedQuery).
					Return(tt.serviceResult, tt.serviceErr).
					Once()
			}

			recorder := serve(tt.target, h.Suggest)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.JSONEq(t, tt.expectedBody, recorder.Body.String())
		})
	}
}
