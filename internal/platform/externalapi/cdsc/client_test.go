package cdsc

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_relay/internal/feature/depository/domain/entity"
	"market_relay/internal/shared/apperr"
)

func page(h4s ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="fun-factor-area"><div class="row">`)
	for _, h := range h4s {
		fmt.Fprintf(&b, "<div><h4>%s</h4></div>", h)
	}
	b.WriteString(`</div></div><h4>outside</h4></body></html>`)
	return b.String()
}

func TestClient_Statistics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []entity.Pair
	}{
		{
			name: "pairs in order",
			html: page(" 5,432,100 ", "Demat Accounts", "1,234", "Meroshare Users"),
			want: []entity.Pair{
				{Value: " 5,432,100 ", Label: "Demat Accounts"},
				{Value: "1,234", Label: "Meroshare Users"},
			},
		},
		{
			name: "trailing unpaired element ignored",
			html: page("1", "A", "2"),
			want: []entity.Pair{{Value: "1", Label: "A"}},
		},
		{
			name: "empty block",
			html: page(),
			want: []entity.Pair{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.html))
			}))
			defer srv.Close()

			got, err := NewClient(srv.URL, srv.Client()).Statistics(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Statistics_MissingBlock(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h4>1</h4><h4>A</h4></body></html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Statistics(context.Background())
	assert.ErrorIs(t, err, apperr.ErrParse)
}
