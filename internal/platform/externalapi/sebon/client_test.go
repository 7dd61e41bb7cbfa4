package sebon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_relay/internal/shared/apperr"
)

const listingPage = `<html><body>
<table class="table">
  <thead><tr><th>Title</th><th>Date</th><th>English</th><th>Nepali</th></tr></thead>
  <tbody>
    <tr>
      <td> ABC Hydropower Ltd. </td>
      <td>2024-01-15</td>
      <td><a href="/uploads/abc-en.pdf">Download</a></td>
      <td><a href="https://cdn.test/abc-np.pdf">Download</a></td>
    </tr>
    <tr><td colspan="4">No more records</td></tr>
    <tr>
      <td>XYZ Bank</td>
      <td>2024-01-10</td>
      <td></td>
      <td></td>
    </tr>
  </tbody>
</table>
</body></html>`

func TestClient_ProspectusRows(t *testing.T) {
	t.Parallel()

	var gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prospectus", r.URL.Path)
		gotPage = r.URL.Query().Get("page")
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client())
	rows, err := c.ProspectusRows(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "2", gotPage)

	require.Len(t, rows, 3)
	require.Len(t, rows[0].Cells, 4)
	assert.Equal(t, " ABC Hydropower Ltd. ", rows[0].Cells[0].Text)
	assert.Equal(t, "/uploads/abc-en.pdf", rows[0].Cells[2].Href)
	assert.Equal(t, srv.URL+"/uploads/abc-en.pdf", rows[0].Cells[2].URL)
	assert.Equal(t, "https://cdn.test/abc-np.pdf", rows[0].Cells[3].URL)

	assert.Len(t, rows[1].Cells, 1)
	assert.Empty(t, rows[2].Cells[2].Href)
	assert.Empty(t, rows[2].Cells[2].URL)
}

func TestClient_ProspectusRows_MissingTable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>maintenance</p></body></html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).ProspectusRows(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrParse)
}

func TestClient_ProspectusRows_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).ProspectusRows(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrUpstreamFetch)
}

func TestClient_ContentLength(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		switch r.URL.Path {
		case "/sized.pdf":
			w.Header().Set("Content-Length", "2097152")
		case "/missing.pdf":
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())

	n, err := c.ContentLength(context.Background(), srv.URL+"/sized.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(2097152), n)

	_, err = c.ContentLength(context.Background(), srv.URL+"/missing.pdf")
	assert.ErrorIs(t, err, apperr.ErrUpstreamFetch)
}

func TestClient_PageURL(t *testing.T) {
	t.Parallel()

	c := NewClient("https://www.sebon.gov.np/", http.DefaultClient)
	assert.Equal(t, "https://www.sebon.gov.np/prospectus?page=3", c.PageURL(3))
}
