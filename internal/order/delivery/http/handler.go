package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	inventorydomain "github.com/tair/warehouse/internal/inventory/domain"
	"github.com/tair/warehouse/internal/order/domain"
	"github.com/tair/warehouse/internal/order/usecase/command"
	"github.com/tair/warehouse/internal/order/usecase/query"
	"github.com/tair/warehouse/pkg/logger"
	"github.com/tair/warehouse/pkg/middleware"
)

// IdempotencyKeyHeader carries the client's key for a pick request
const IdempotencyKeyHeader = "Idempotency-Key"

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// OrderHandler handles HTTP requests for orders using CQRS pattern
type OrderHandler struct {
	// Command handlers
	createHandler *command.CreateOrderHandler
	deleteHandler *command.DeleteOrderHandler
	pickHandler   *command.PickItemHandler

	// Query handlers
	getHandler   *query.GetOrderHandler
	listHandler  *query.ListOrdersHandler
	statsHandler *query.GetStatsHandler

	protect middleware.HandlerWrapper
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	deleteHandler *command.DeleteOrderHandler,
	pickHandler *command.PickItemHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
	statsHandler *query.GetStatsHandler,
	protect middleware.HandlerWrapper,
) *OrderHandler {
	if protect == nil {
		protect = middleware.PassThrough
	}
	return &OrderHandler{
		createHandler: createHandler,
		deleteHandler: deleteHandler,
		pickHandler:   pickHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
		statsHandler:  statsHandler,
		protect:       protect,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/dashboard-stats", middleware.Metrics("/api/dashboard-stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/orders", middleware.Metrics("/api/orders", h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders/{id}", middleware.Metrics("/api/orders/{id}", h.GetOrder)).Methods("GET")

	// Order changes
	router.HandleFunc("/api/orders", middleware.Metrics("/api/orders", h.protect(h.CreateOrder))).Methods("POST")
	router.HandleFunc("/api/orders/{id}", middleware.Metrics("/api/orders/{id}", h.protect(h.DeleteOrder))).Methods("DELETE")
	router.HandleFunc("/api/orders/{id}/pick", middleware.Metrics("/api/orders/{id}/pick", h.protect(h.PickItem))).Methods("PUT")
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description SKU count, units in stock, and order counts; pending includes partially picked orders
// @Tags Dashboard
// @Produce json
// @Success 200 {object} object{success=bool,data=object{total_skus=int,items_in_stock=int,total_orders=int,pending_orders=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/dashboard-stats [get]
func (h *OrderHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context(), query.GetStatsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	recordStats(stats)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// ListOrders godoc
// @Summary List orders
// @Description Most recently created first
// @Tags Orders
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// GetOrder godoc
// @Summary Get order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.getHandler.Handle(r.Context(), query.GetOrderQuery{ID: id})
	if err != nil {
		h.respondError(w, r, err, "Failed to get order")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// CreateOrder godoc
// @Summary Create order
// @Description Every SKU must exist in the ledger; stock sufficiency is not checked
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{items=object} true "SKU to quantity"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items domain.Items `json:"items"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Items == nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "items is required",
		})
		return
	}

	order, err := h.createHandler.Handle(r.Context(), command.CreateOrderCommand{Items: req.Items})
	if err != nil {
		h.respondError(w, r, err, "Failed to create order")
		return
	}

	logger.Info(r.Context()).
		Str("order_id", order.ID).
		Int("skus", len(order.Requested)).
		Msg("Order created")

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// DeleteOrder godoc
// @Summary Delete order
// @Description Picked stock is not returned to the ledger
// @Tags Orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteOrderCommand{ID: id}); err != nil {
		h.respondError(w, r, err, "Failed to delete order")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PickItem godoc
// @Summary Pick an item for an order
// @Description Decrements stock and records the pick in one transaction
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param Idempotency-Key header string false "Rejects a repeated pick with the same key"
// @Param request body object{sku=string,quantity=int} true "Pick"
// @Success 200 {object} object{success=bool,message=string,data=object{order_id=string,sku=string,quantity=int,remaining_stock=int,order_status=string}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/orders/{id}/pick [put]
func (h *OrderHandler) PickItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		SKU      string `json:"sku"`
		Quantity int    `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.pickHandler.Handle(r.Context(), command.PickItemCommand{
		OrderID:        id,
		SKU:            req.SKU,
		Quantity:       req.Quantity,
		IdempotencyKey: r.Header.Get(IdempotencyKeyHeader),
	})
	picksTotal.WithLabelValues(pickOutcome(err)).Inc()
	if err != nil {
		h.respondError(w, r, err, "Failed to pick item")
		return
	}

	logger.Info(r.Context()).
		Str("order_id", result.OrderID).
		Str("sku", result.SKU).
		Int("quantity", result.Quantity).
		Str("status", string(result.Status)).
		Msg("Item picked")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item picked successfully",
		Data:    result,
	})
}

// RegisterHealthCheck registers health check endpoints
func (h *OrderHandler) RegisterHealthCheck(router *mux.Router, pinger Pinger) {
	health := func(w http.ResponseWriter, r *http.Request) {
		if err := pinger.Ping(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Warehouse service is healthy",
		})
	}
	router.HandleFunc("/health", health).Methods("GET")
	router.HandleFunc("/api/health", health).Methods("GET")
}

// respondError maps order and ledger errors to status codes; anything unknown is a 500
func (h *OrderHandler) respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var unknown *domain.UnknownSKUError
	switch {
	case errors.As(err, &unknown):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: unknown.Error()})
	case errors.Is(err, domain.ErrOrderNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
	case errors.Is(err, inventorydomain.ErrInsufficientStock):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Not enough stock."})
	case errors.Is(err, domain.ErrDuplicatePick):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: domain.ErrDuplicatePick.Error()})
	case errors.Is(err, domain.ErrInvalidItems), errors.Is(err, domain.ErrInvalidPick):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		logger.Error(r.Context()).Err(err).Msg(msg)
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: msg})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
