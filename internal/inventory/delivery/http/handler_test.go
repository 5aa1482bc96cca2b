package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/warehouse/internal/inventory/domain"
	"github.com/tair/warehouse/internal/inventory/usecase/command"
	"github.com/tair/warehouse/internal/inventory/usecase/query"
	"github.com/tair/warehouse/internal/store"
	"github.com/tair/warehouse/pkg/auth"
	"github.com/tair/warehouse/pkg/middleware"
)

func newTestRouter(t *testing.T, protect middleware.HandlerWrapper) (*mux.Router, domain.InventoryRepository) {
	t.Helper()
	repo := store.NewMemoryStore().Repositories().Inventory
	h := NewInventoryHandler(
		command.NewRegisterItemHandler(repo),
		command.NewUpdateItemHandler(repo),
		command.NewRemoveItemHandler(repo),
		command.NewReceiveStockHandler(repo),
		query.NewGetItemHandler(repo),
		query.NewListItemsHandler(repo),
		protect,
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router, repo
}

func do(t *testing.T, router http.Handler, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestRegisterProduct(t *testing.T) {
	router, repo := newTestRouter(t, nil)

	rec, resp := do(t, router, "POST", "/api/products", map[string]interface{}{
		"sku": "SKU001", "name": "Wireless Mouse", "quantity": 150, "location_id": "IL1-A-01",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)

	item, err := repo.FindBySKU(context.Background(), "SKU001")
	require.NoError(t, err)
	assert.Equal(t, 150, item.Quantity)

	rec, resp = do(t, router, "POST", "/api/products", map[string]interface{}{"sku": "SKU001", "name": "Again"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, resp.Success)

	rec, _ = do(t, router, "POST", "/api/products", map[string]interface{}{"sku": "SKU002", "name": "Neg", "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterProduct_InvalidBody(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	req := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAndListInventory(t *testing.T) {
	router, repo := newTestRouter(t, nil)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.InventoryItem{SKU: "B", Name: "b", Quantity: 2}))
	require.NoError(t, repo.Create(ctx, &domain.InventoryItem{SKU: "A", Name: "a", Quantity: 1}))

	rec, resp := do(t, router, "GET", "/api/inventory", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].(map[string]interface{})["sku"])

	rec, _ = do(t, router, "GET", "/api/inventory/B", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = do(t, router, "GET", "/api/inventory/ZZZ", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", resp.Error)
}

func TestUpdateProduct(t *testing.T) {
	router, repo := newTestRouter(t, nil)
	ctx := context.Background()
	loc := "IL1-A-01"
	require.NoError(t, repo.Create(ctx, &domain.InventoryItem{SKU: "SKU001", Name: "Mouse", Quantity: 5, Location: &loc}))

	rec, _ := do(t, router, "PUT", "/api/products/SKU001", map[string]interface{}{"quantity": 42})
	require.Equal(t, http.StatusOK, rec.Code)

	item, err := repo.FindBySKU(ctx, "SKU001")
	require.NoError(t, err)
	assert.Equal(t, 42, item.Quantity)
	assert.Nil(t, item.Location, "omitted location clears it")

	rec, _ = do(t, router, "PUT", "/api/products/SKU001", map[string]interface{}{"location_id": "X"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, router, "PUT", "/api/products/NOPE", map[string]interface{}{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	router, repo := newTestRouter(t, nil)
	require.NoError(t, repo.Create(context.Background(), &domain.InventoryItem{SKU: "SKU001", Name: "Mouse"}))

	rec, _ := do(t, router, "DELETE", "/api/products/SKU001", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, router, "DELETE", "/api/products/SKU001", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReceiveStock(t *testing.T) {
	router, repo := newTestRouter(t, nil)
	require.NoError(t, repo.Create(context.Background(), &domain.InventoryItem{SKU: "SKU001", Name: "Mouse", Quantity: 5}))

	rec, resp := do(t, router, "POST", "/api/products/SKU001/receive", map[string]interface{}{"quantity": 10})
	require.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(15), data["quantity"])

	rec, _ = do(t, router, "POST", "/api/products/SKU001/receive", map[string]interface{}{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, router, "POST", "/api/products/NOPE/receive", map[string]interface{}{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMutatingRoutesRequireToken(t *testing.T) {
	validator := auth.NewValidator("test-secret")
	router, _ := newTestRouter(t, middleware.RequireBearer(validator))

	rec, _ := do(t, router, "POST", "/api/products", map[string]interface{}{"sku": "SKU001", "name": "Mouse"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, router, "GET", "/api/inventory", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "reads stay public")

	token, err := validator.GenerateToken("picker", "operator", time.Minute)
	require.NoError(t, err)
	rec, _ = do(t, router, "POST", "/api/products", map[string]interface{}{"sku": "SKU001", "name": "Mouse"}, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
