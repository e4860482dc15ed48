package cart

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prakruti/internal/catalog"
	"prakruti/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products, err := catalog.Default()
	require.NoError(t, err)

	hub := events.NewHub(8)
	svc := NewService(NewMemoryBlobStore(), hub, nil)
	h := NewHandler(svc, products, hub)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Test-Shopper"); id != "" {
			c.Set("shopperID", id)
		}
		c.Next()
	})
	r.GET("/cart", h.Get)
	r.GET("/cart/count", h.Count)
	r.POST("/cart/items", h.AddItem)
	r.DELETE("/cart/items/:id", h.RemoveItem)
	return r
}

func do(r *gin.Engine, method, path, shopper string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if shopper != "" {
		req.Header.Set("X-Test-Shopper", shopper)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_AddAndCount(t *testing.T) {
	r := setupCartTestRouter(t)

	w := do(r, http.MethodPost, "/cart/items", "s1", map[string]int{"product_id": 1})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, "/cart/items", "s1", map[string]int{"product_id": 1})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, "/cart/items", "s1", map[string]int{"product_id": 3})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/cart/count", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":3}`, w.Body.String())

	w = do(r, http.MethodGet, "/cart", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Len(t, summary.Items, 2)
	assert.Equal(t, 2150.0, summary.TotalPrice)
}

func TestHandler_Remove(t *testing.T) {
	r := setupCartTestRouter(t)

	do(r, http.MethodPost, "/cart/items", "s1", map[string]int{"product_id": 2})
	w := do(r, http.MethodDelete, "/cart/items/2", "s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0, summary.TotalQuantity)
}

func TestHandler_Errors(t *testing.T) {
	r := setupCartTestRouter(t)

	w := do(r, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/cart/items", "s1", map[string]int{"product_id": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodDelete, "/cart/items/abc", "s1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
