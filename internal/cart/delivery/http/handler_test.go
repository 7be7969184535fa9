package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	catalogrepo "github.com/bookhaven/storefront/internal/catalog/repository"
	sessiondomain "github.com/bookhaven/storefront/internal/session/domain"
	sessionrepo "github.com/bookhaven/storefront/internal/session/repository"
)

type fakeScheduler struct{}

func (fakeScheduler) AfterFunc(d time.Duration, f func()) {}

// One handler for the whole file: metric registration is global
func TestCartEndpoints(t *testing.T) {
	sessions := sessionrepo.NewMemorySessionRepository()
	session := sessiondomain.NewSession("s1", fakeScheduler{})
	require.NoError(t, sessions.Create(session))

	books := catalogrepo.NewMemoryBookRepository()
	require.NoError(t, books.Seed([]catalogdomain.Book{
		{ID: "1", Title: "The Echoes of Time", Price: 19.99},
	}))

	router := mux.NewRouter()
	NewCartHandler(sessions, books).RegisterRoutes(router)

	do := func(method, path string, body interface{}, sessionID string) (*httptest.ResponseRecorder, Response) {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		if sessionID != "" {
			req.Header.Set("X-Session-ID", sessionID)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var resp Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		return rec, resp
	}

	t.Run("requires session header", func(t *testing.T) {
		rec, resp := do(http.MethodGet, "/api/cart", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, resp.Success)
	})

	t.Run("unknown session", func(t *testing.T) {
		rec, _ := do(http.MethodGet, "/api/cart", nil, "missing")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		rec, resp := do(http.MethodGet, "/api/cart", nil, "s1")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := resp.Data.(map[string]interface{})
		assert.Empty(t, data["items"])
		assert.Zero(t, data["total"])
	})

	t.Run("add item", func(t *testing.T) {
		rec, resp := do(http.MethodPost, "/api/cart/items", map[string]string{"bookId": "1"}, "s1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.InDelta(t, 19.99, data["total"].(float64), 1e-9)
		assert.EqualValues(t, 1, data["count"])

		// The drawer opened as a side effect
		assert.True(t, session.View().CartOpen)
	})

	t.Run("add unknown book", func(t *testing.T) {
		rec, resp := do(http.MethodPost, "/api/cart/items", map[string]string{"bookId": "nope"}, "s1")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Book not found", resp.Error)
	})

	t.Run("add without body", func(t *testing.T) {
		rec, _ := do(http.MethodPost, "/api/cart/items", map[string]string{}, "s1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("quantity delta clamps at one", func(t *testing.T) {
		rec, resp := do(http.MethodPatch, "/api/cart/items/1", map[string]int{"delta": -5}, "s1")
		require.Equal(t, http.StatusOK, rec.Code)
		data := resp.Data.(map[string]interface{})
		assert.EqualValues(t, 1, data["count"])
	})

	t.Run("remove item", func(t *testing.T) {
		rec, resp := do(http.MethodDelete, "/api/cart/items/1", nil, "s1")
		require.Equal(t, http.StatusOK, rec.Code)
		data := resp.Data.(map[string]interface{})
		assert.Empty(t, data["items"])
		assert.EqualValues(t, 0, data["count"])
	})
}
