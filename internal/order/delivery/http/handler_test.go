package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventorydomain "github.com/tair/warehouse/internal/inventory/domain"
	"github.com/tair/warehouse/internal/order/usecase/command"
	"github.com/tair/warehouse/internal/order/usecase/query"
	"github.com/tair/warehouse/internal/store"
)

type keySet struct {
	mu   sync.Mutex
	keys map[string]bool
}

func (k *keySet) Acquire(_ context.Context, key string) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.keys[key] {
		return false, nil
	}
	k.keys[key] = true
	return true, nil
}

func (k *keySet) Release(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.keys, key)
	return nil
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("down") }

func newTestRouter(t *testing.T, stock map[string]int) (*mux.Router, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	for sku, qty := range stock {
		require.NoError(t, s.Repositories().Inventory.Create(context.Background(), &inventorydomain.InventoryItem{SKU: sku, Name: sku, Quantity: qty}))
	}

	orders := s.Repositories().Orders
	h := NewOrderHandler(
		command.NewCreateOrderHandler(s),
		command.NewDeleteOrderHandler(orders),
		command.NewPickItemHandler(s, &keySet{keys: map[string]bool{}}, nil),
		query.NewGetOrderHandler(orders),
		query.NewListOrdersHandler(orders),
		query.NewGetStatsHandler(s),
		nil,
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	h.RegisterHealthCheck(router, s)
	return router, s
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

func createOrder(t *testing.T, router http.Handler, items map[string]int) string {
	t.Helper()
	rec, resp := do(t, router, "POST", "/api/orders", map[string]interface{}{"items": items})
	require.Equal(t, http.StatusCreated, rec.Code, resp.Error)
	return resp.Data.(map[string]interface{})["id"].(string)
}

func TestOrderLifecycle(t *testing.T) {
	router, _ := newTestRouter(t, map[string]int{"SKU001": 150})
	id := createOrder(t, router, map[string]int{"SKU001": 100})

	rec, resp := do(t, router, "PUT", "/api/orders/"+id+"/pick", map[string]interface{}{"sku": "SKU001", "quantity": 60})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Item picked successfully", resp.Message)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Partial", data["order_status"])
	assert.Equal(t, float64(90), data["remaining_stock"])

	rec, resp = do(t, router, "PUT", "/api/orders/"+id+"/pick", map[string]interface{}{"sku": "SKU001", "quantity": 40})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Completed", resp.Data.(map[string]interface{})["order_status"])

	rec, resp = do(t, router, "GET", "/api/orders/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	order := resp.Data.(map[string]interface{})
	assert.Equal(t, "Completed", order["status"])
	assert.Equal(t, float64(100), order["picked_items"].(map[string]interface{})["SKU001"])

	rec, resp = do(t, router, "GET", "/api/dashboard-stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(50), stats["items_in_stock"])
	assert.Equal(t, float64(1), stats["total_orders"])
	assert.Equal(t, float64(0), stats["pending_orders"])

	rec, _ = do(t, router, "DELETE", "/api/orders/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, router, "GET", "/api/orders/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder_Errors(t *testing.T) {
	router, s := newTestRouter(t, map[string]int{"SKU001": 1})

	rec, resp := do(t, router, "POST", "/api/orders", map[string]interface{}{"items": map[string]int{"SKU999": 1}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "product SKU 'SKU999' not found", resp.Error)

	rec, _ = do(t, router, "POST", "/api/orders", map[string]interface{}{"items": map[string]int{"SKU001": 0}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, router, "POST", "/api/orders", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	orders, err := s.Repositories().Orders.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPickItem_Errors(t *testing.T) {
	router, _ := newTestRouter(t, map[string]int{"SKU001": 5})
	id := createOrder(t, router, map[string]int{"SKU001": 10})

	tests := []struct {
		name   string
		path   string
		body   map[string]interface{}
		status int
		errMsg string
	}{
		{"missing order", "/api/orders/nope/pick", map[string]interface{}{"sku": "SKU001", "quantity": 1}, http.StatusNotFound, "Order not found"},
		{"unknown sku", "/api/orders/" + id + "/pick", map[string]interface{}{"sku": "SKU404", "quantity": 1}, http.StatusNotFound, "product SKU 'SKU404' not found"},
		{"not enough stock", "/api/orders/" + id + "/pick", map[string]interface{}{"sku": "SKU001", "quantity": 6}, http.StatusBadRequest, "Not enough stock."},
		{"zero quantity", "/api/orders/" + id + "/pick", map[string]interface{}{"sku": "SKU001", "quantity": 0}, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := do(t, router, "PUT", tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, resp.Success)
			if tt.errMsg != "" {
				assert.Equal(t, tt.errMsg, resp.Error)
			}
		})
	}
}

func TestPickItem_DuplicateIdempotencyKey(t *testing.T) {
	router, _ := newTestRouter(t, map[string]int{"SKU001": 5})
	id := createOrder(t, router, map[string]int{"SKU001": 2})
	body := map[string]interface{}{"sku": "SKU001", "quantity": 1}

	rec, _ := do(t, router, "PUT", "/api/orders/"+id+"/pick", body, IdempotencyKeyHeader, "scan-42")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, router, "PUT", "/api/orders/"+id+"/pick", body, IdempotencyKeyHeader, "scan-42")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListOrders_EmptyIsArray(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/orders", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec, _ := do(t, router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, router, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	down := mux.NewRouter()
	(&OrderHandler{}).RegisterHealthCheck(down, failingPinger{})
	rec, _ = do(t, down, "GET", "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPickOutcome(t *testing.T) {
	assert.Equal(t, "picked", pickOutcome(nil))
	assert.Equal(t, "insufficient_stock", pickOutcome(inventorydomain.ErrInsufficientStock))
	assert.Equal(t, "error", pickOutcome(errors.New("boom")))
}
