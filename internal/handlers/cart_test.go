package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookbrew_bff/internal/backend"
	"bookbrew_bff/internal/models"
	"bookbrew_bff/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog sert les produits sans passer par le backend.
type stubCatalog struct {
	products map[int64]*models.Product
}

func (s *stubCatalog) GetProduct(_ context.Context, id int64) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, &backend.APIError{Status: http.StatusNotFound, Message: "Produit introuvable"}
}

func setupCartRouter(t *testing.T) (*gin.Engine, *store.CartStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	carts := store.NewCartStore(store.NewRedisRepository(client))
	catalog := &stubCatalog{products: map[int64]*models.Product{
		10: {ID: 10, Name: "Le Hobbit", Price: 100, DiscountPercentage: 20, ImageURLs: []string{"hobbit.jpg"}},
		20: {ID: 20, Name: "Café Bourbon 500g", Price: 50},
	}}
	h := NewCartHandler(carts, catalog)

	r := gin.New()
	// Session simulée : le middleware JWT est testé à part
	r.Use(func(c *gin.Context) { c.Set("user_id", int64(1)) })
	r.GET("/bff/cart", h.Get)
	r.POST("/bff/cart/items", h.Add)
	r.PUT("/bff/cart/items/:productId", h.UpdateQuantity)
	r.DELETE("/bff/cart/items/:productId", h.Remove)
	r.DELETE("/bff/cart", h.Clear)

	return r, carts
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartHandler_GetStartsEmpty(t *testing.T) {
	r, _ := setupCartRouter(t)

	w := doJSON(r, http.MethodGet, "/bff/cart", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var snap models.CartSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.Total)
}

func TestCartHandler_AddSnapshotsPriceFromCatalog(t *testing.T) {
	r, carts := setupCartRouter(t)

	w := doJSON(r, http.MethodPost, "/bff/cart/items", gin.H{"productId": 10})
	require.Equal(t, http.StatusOK, w.Code)

	snap := carts.Get(context.Background(), 1)
	require.Len(t, snap.Items, 1)
	li := snap.Items[0]
	assert.Equal(t, "Le Hobbit", li.Name)
	assert.InDelta(t, 100.0, li.UnitPrice, 1e-9)
	assert.InDelta(t, 20.0, li.DiscountPercentage, 1e-9)
	assert.Equal(t, "hobbit.jpg", li.ImageURL)
	assert.Equal(t, 1, li.Quantity)
	assert.InDelta(t, 80.0, snap.Total, 1e-9)
}

func TestCartHandler_AddUnknownProduct(t *testing.T) {
	r, _ := setupCartRouter(t)

	w := doJSON(r, http.MethodPost, "/bff/cart/items", gin.H{"productId": 999})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_AddWithoutProductID(t *testing.T) {
	r, _ := setupCartRouter(t)

	w := doJSON(r, http.MethodPost, "/bff/cart/items", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_UpdateQuantityRejectsZero(t *testing.T) {
	r, _ := setupCartRouter(t)

	doJSON(r, http.MethodPost, "/bff/cart/items", gin.H{"productId": 10})
	w := doJSON(r, http.MethodPut, "/bff/cart/items/10", gin.H{"quantity": 0})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	r, carts := setupCartRouter(t)

	doJSON(r, http.MethodPost, "/bff/cart/items", gin.H{"productId": 20})
	w := doJSON(r, http.MethodPut, "/bff/cart/items/20", gin.H{"quantity": 4})

	require.Equal(t, http.StatusOK, w.Code)
	snap := carts.Get(context.Background(), 1)
	assert.Equal(t, 4, snap.Items[0].Quantity)
	assert.InDelta(t, 200.0, snap.Total, 1e-9)
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	r, carts := setupCartRouter(t)
	ctx := context.Background()

	doJSON(r, http.MethodPost, "/bff/cart/items", gin.H{"productId": 10})
	doJSON(r, http.MethodPost, "/bff/cart/items", gin.H{"productId": 20})

	w := doJSON(r, http.MethodDelete, "/bff/cart/items/10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, carts.Get(ctx, 1).Items, 1)

	w = doJSON(r, http.MethodDelete, "/bff/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, carts.Get(ctx, 1).Items)
}

func TestCartHandler_InvalidProductIDInPath(t *testing.T) {
	r, _ := setupCartRouter(t)

	w := doJSON(r, http.MethodDelete, "/bff/cart/items/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
