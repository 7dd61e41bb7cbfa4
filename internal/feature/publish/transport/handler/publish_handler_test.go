package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"market_relay/internal/feature/publish/domain/entity"
	"market_relay/internal/feature/publish/transport/handler"
	"market_relay/internal/feature/publish/usecase"
	"market_relay/internal/shared/apperr"
)

type stubPublishUsecase struct {
	pub entity.Publication
	err error
}

func (s stubPublishUsecase) Publish(context.Context, string) (entity.Publication, error) {
	return s.pub, s.err
}

func TestPublishHandler_Publish(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		dataset        string
		uc             stubPublishUsecase
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "success",
			dataset: "cdsc",
			uc: stubPublishUsecase{pub: entity.Publication{
				Dataset: entity.CDSC, Path: "data/cdsc.json", Count: 14,
				RefreshedAt: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Published cdsc (14 records).","path":"data/cdsc.json","refreshedAt":"2024-01-15T09:30:00Z"}`,
		},
		{
			name:           "unknown dataset",
			dataset:        "gold",
			uc:             stubPublishUsecase{err: fmt.Errorf("%w: gold", apperr.ErrValidation)},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"Unknown dataset 'gold'."}`,
		},
		{
			name:           "sink disabled",
			dataset:        "cdsc",
			uc:             stubPublishUsecase{err: usecase.ErrSinkUnavailable},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"success":false,"message":"Publication sink is not configured."}`,
		},
		{
			name:           "write failure",
			dataset:        "prospectus",
			uc:             stubPublishUsecase{err: apperr.ErrPublish},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Failed to publish prospectus."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/api/v1/publish/:dataset", handler.NewPublishHandler(tt.uc).Publish)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/publish/"+tt.dataset, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
