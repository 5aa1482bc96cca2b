package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/warehouse/internal/inventory/domain"
	"github.com/tair/warehouse/internal/inventory/usecase/command"
	"github.com/tair/warehouse/internal/inventory/usecase/query"
	"github.com/tair/warehouse/pkg/logger"
	"github.com/tair/warehouse/pkg/middleware"
)

// InventoryHandler handles HTTP requests for the ledger using CQRS pattern
type InventoryHandler struct {
	// Command handlers
	registerHandler *command.RegisterItemHandler
	updateHandler   *command.UpdateItemHandler
	removeHandler   *command.RemoveItemHandler
	receiveHandler  *command.ReceiveStockHandler

	// Query handlers
	getHandler  *query.GetItemHandler
	listHandler *query.ListItemsHandler

	protect middleware.HandlerWrapper
}

// NewInventoryHandler creates a new inventory handler.
// protect wraps every route that changes the ledger.
func NewInventoryHandler(
	registerHandler *command.RegisterItemHandler,
	updateHandler *command.UpdateItemHandler,
	removeHandler *command.RemoveItemHandler,
	receiveHandler *command.ReceiveStockHandler,
	getHandler *query.GetItemHandler,
	listHandler *query.ListItemsHandler,
	protect middleware.HandlerWrapper,
) *InventoryHandler {
	if protect == nil {
		protect = middleware.PassThrough
	}
	return &InventoryHandler{
		registerHandler: registerHandler,
		updateHandler:   updateHandler,
		removeHandler:   removeHandler,
		receiveHandler:  receiveHandler,
		getHandler:      getHandler,
		listHandler:     listHandler,
		protect:         protect,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/inventory", middleware.Metrics("/api/inventory", h.ListInventory)).Methods("GET")
	router.HandleFunc("/api/inventory/{sku}", middleware.Metrics("/api/inventory/{sku}", h.GetItem)).Methods("GET")

	// Ledger changes
	router.HandleFunc("/api/products", middleware.Metrics("/api/products", h.protect(h.RegisterProduct))).Methods("POST")
	router.HandleFunc("/api/products/{sku}", middleware.Metrics("/api/products/{sku}", h.protect(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/products/{sku}", middleware.Metrics("/api/products/{sku}", h.protect(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/api/products/{sku}/receive", middleware.Metrics("/api/products/{sku}/receive", h.protect(h.ReceiveStock))).Methods("POST")
}

// ListInventory godoc
// @Summary List inventory
// @Description Get every ledger entry ordered by SKU
// @Tags Inventory
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/inventory [get]
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.listHandler.Handle(r.Context(), query.ListItemsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inventory")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list inventory",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// GetItem godoc
// @Summary Get inventory item
// @Tags Inventory
// @Produce json
// @Param sku path string true "SKU"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/{sku} [get]
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	item, err := h.getHandler.Handle(r.Context(), query.GetItemQuery{SKU: sku})
	if err != nil {
		h.respondError(w, r, err, "Failed to get item")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

// RegisterProduct godoc
// @Summary Register a product
// @Description Add a SKU to the ledger
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{sku=string,name=string,description=string,quantity=int,location_id=string} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *InventoryHandler) RegisterProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SKU         string  `json:"sku"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Quantity    int     `json:"quantity"`
		Location    *string `json:"location_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.registerHandler.Handle(r.Context(), command.RegisterItemCommand{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Location:    req.Location,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to register product")
		return
	}

	logger.Info(r.Context()).
		Str("sku", item.SKU).
		Int("quantity", item.Quantity).
		Msg("Product registered")

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    item,
	})
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Overwrite quantity and location; a missing location clears it
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sku path string true "SKU"
// @Param request body object{quantity=int,location_id=string} true "New values"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{sku} [put]
func (h *InventoryHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	var req struct {
		Quantity *int    `json:"quantity"`
		Location *string `json:"location_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Quantity == nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "quantity is required",
		})
		return
	}

	item, err := h.updateHandler.Handle(r.Context(), command.UpdateItemCommand{
		SKU:      sku,
		Quantity: *req.Quantity,
		Location: req.Location,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to update product")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    item,
	})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Security BearerAuth
// @Param sku path string true "SKU"
// @Success 204
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{sku} [delete]
func (h *InventoryHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	if err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{SKU: sku}); err != nil {
		h.respondError(w, r, err, "Failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReceiveStock godoc
// @Summary Receive stock
// @Description Add quantity to an existing SKU
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sku path string true "SKU"
// @Param request body object{quantity=int} true "Units received"
// @Success 200 {object} object{success=bool,message=string,data=object{sku=string,quantity=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{sku}/receive [post]
func (h *InventoryHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	qty, err := h.receiveHandler.Handle(r.Context(), command.ReceiveStockCommand{SKU: sku, Amount: req.Quantity})
	if err != nil {
		h.respondError(w, r, err, "Failed to receive stock")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock received successfully",
		Data: map[string]interface{}{
			"sku":      sku,
			"quantity": qty,
		},
	})
}

// respondError maps ledger errors to status codes; anything unknown is a 500
func (h *InventoryHandler) respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
	case errors.Is(err, domain.ErrDuplicateSKU):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: "Product SKU already exists."})
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrSKURequired),
		errors.Is(err, domain.ErrNameRequired):
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
