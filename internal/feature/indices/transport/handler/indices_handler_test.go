package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"market_relay/internal/feature/indices/transport/handler"
	"market_relay/internal/feature/indices/usecase"
	"market_relay/internal/shared/apperr"
	"market_relay/internal/shared/record"
)

type stubIndexSource struct {
	err error
}

func (s stubIndexSource) LiveIndices(_ context.Context, endpoint string) ([]record.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []record.Record{{"endpoint": endpoint}}, nil
}

func TestIndicesHandler_GetMarketIndices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		src            stubIndexSource
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "default type fetches both",
			url:            "/get_market_indices",
			expectedStatus: http.StatusOK,
			expectedBody: `[
				{"endpoint":"GetIndexLive","type":"indices"},
				{"endpoint":"GetSubIndexLive","type":"sub_indices"}
			]`,
		},
		{
			name:           "sub indices",
			url:            "/get_market_indices?type=sub_indices",
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"endpoint":"GetSubIndexLive","type":"sub_indices"}]`,
		},
		{
			name:           "invalid type",
			url:            "/get_market_indices?type=sector",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid type parameter"}`,
		},
		{
			name:           "upstream failure",
			url:            "/get_market_indices?type=indices",
			src:            stubIndexSource{err: apperr.ErrUpstreamFetch},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Failed to fetch market indices."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewIndicesHandler(usecase.NewIndicesUsecase(tt.src))
			r := gin.New()
			r.GET("/get_market_indices", h.GetMarketIndices)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
