package apikey

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newRouter(opts Options, reached *bool) *gin.Engine {
	r := gin.New()
	r.GET("/protected", Required(opts), func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequired(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		header     map[string]string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "header key accepted",
			opts:       Options{Secret: "s3cret"},
			header:     map[string]string{"x-api-key": "s3cret"},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		{
			name:       "query key accepted",
			opts:       Options{Secret: "s3cret"},
			query:      "?api_key=s3cret",
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		{
			name:       "wrong header, right query",
			opts:       Options{Secret: "s3cret"},
			header:     map[string]string{"x-api-key": "nope"},
			query:      "?api_key=s3cret",
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		{
			name:       "missing key",
			opts:       Options{Secret: "s3cret"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"Unauthorized. Invalid API Key."}`,
		},
		{
			name:       "mismatched key",
			opts:       Options{Secret: "s3cret"},
			header:     map[string]string{"x-api-key": "s3cre"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"Unauthorized. Invalid API Key."}`,
		},
		{
			name:       "unconfigured secret rejects empty key",
			opts:       Options{},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"Unauthorized. Invalid API Key."}`,
		},
		{
			name: "custom header and body",
			opts: Options{
				Secret:       "s3cret",
				Header:       "view-mode",
				Query:        "view-mode",
				Unauthorized: []gin.H{{"error": "Unauthorized. Invalid Key."}},
			},
			header:     map[string]string{"x-api-key": "s3cret"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `[{"error":"Unauthorized. Invalid Key."}]`,
		},
		{
			name:       "custom query accepted",
			opts:       Options{Secret: "s3cret", Header: "view-mode", Query: "view-mode"},
			query:      "?view-mode=s3cret",
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			r := newRouter(tt.opts, &reached)

			req := httptest.NewRequest(http.MethodGet, "/protected"+tt.query, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Valid("k", "k"))
	assert.False(t, Valid("k", "K"))
	assert.False(t, Valid("", ""))
	assert.False(t, Valid("k", ""))
}
