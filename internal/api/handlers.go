package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/menu"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/order"
)

// Publisher hands a payload to the outbound message channel.
type Publisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

type Handlers struct {
	menu   *menu.Service
	orders *order.Service
	intake Publisher
}

func NewHandlers(menuSvc *menu.Service, orderSvc *order.Service, intake Publisher) *Handlers {
	return &Handlers{
		menu:   menuSvc,
		orders: orderSvc,
		intake: intake,
	}
}

// Menu Handlers

func (h *Handlers) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.ListAvailable(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r.URL.Path, "/api/menu/")
	if !ok {
		return
	}
	item, err := h.menu.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handlers) GetMenuByCategory(w http.ResponseWriter, r *http.Request) {
	category := extractPathParam(r.URL.Path, "/api/menu/category/")
	items, err := h.menu.ByCategory(r.Context(), category)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handlers) SearchMenu(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	items, err := h.menu.Search(r.Context(), term)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item menu.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.menu.Create(r.Context(), &item)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r.URL.Path, "/api/menu/")
	if !ok {
		return
	}

	var item menu.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.menu.Update(r.Context(), id, &item)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r.URL.Path, "/api/menu/")
	if !ok {
		return
	}

	if err := h.menu.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Menu item removed from menu"})
}

// Order Handlers

// CreateOrder accepts an order request and queues it for processing. The
// order worker performs the actual validation against the catalog and the
// persist; only the request shape is checked here.
func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req order.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.intake.Publish(r.Context(), req.CustomerEmail, req); err != nil {
		http.Error(w, "Failed to queue order request", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{
		"message": "Order request accepted and queued for processing",
	})
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r.URL.Path, "/api/orders/")
	if !ok {
		return
	}
	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (h *Handlers) GetOrdersByCustomer(w http.ResponseWriter, r *http.Request) {
	email := extractPathParam(r.URL.Path, "/api/orders/customer/")
	orders, err := h.orders.ByCustomerEmail(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handlers) GetOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := order.ParseStatus(extractPathParam(r.URL.Path, "/api/orders/status/"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	orders, err := h.orders.ByStatus(r.Context(), status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handlers) GetPendingOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.Pending(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/status")
	id, ok := parseID(w, path, "/api/orders/")
	if !ok {
		return
	}
	status, err := order.ParseStatus(r.URL.Query().Get("status"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	o, err := h.orders.UpdateStatus(r.Context(), id, status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (h *Handlers) CancelOrder(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/cancel")
	id, ok := parseID(w, path, "/api/orders/")
	if !ok {
		return
	}

	o, err := h.orders.Cancel(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (h *Handlers) GetOrderStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orders.Statistics(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Helpers

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func extractPathParam(path, prefix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(path, prefix), "/")
}

func parseID(w http.ResponseWriter, path, prefix string) (int64, bool) {
	id, err := strconv.ParseInt(extractPathParam(path, prefix), 10, 64)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// respondServiceError maps domain errors to transport status codes. This
// is the only place engine errors become HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound), errors.Is(err, menu.ErrItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, order.ErrMenuItemUnavailable),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrInvalidRequest),
		errors.Is(err, order.ErrUnknownStatus),
		errors.Is(err, order.ErrRelayFailure),
		errors.Is(err, menu.ErrInvalidName),
		errors.Is(err, menu.ErrInvalidPrice):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
