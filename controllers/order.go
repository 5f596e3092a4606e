// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"foodapp/middleware"
	"foodapp/models"
)

// RecentOrdersLimit caps GET /api/orders
const RecentOrdersLimit = 50

const notifyTimeout = 15 * time.Second

// OrderNotifier is told about every order after it has been stored
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, order models.Order) error
}

// OrderController handles order-related requests
type OrderController struct {
	Store     OrderStore
	Notifiers []OrderNotifier
	Logger    *slog.Logger
	Now       func() time.Time
}

// NewOrderController creates a new OrderController
func NewOrderController(store OrderStore, log *slog.Logger, notifiers ...OrderNotifier) *OrderController {
	return &OrderController{
		Store:     store,
		Notifiers: notifiers,
		Logger:    log,
		Now:       time.Now,
	}
}

type createOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

type ordersResponse struct {
	Success bool           `json:"success"`
	Data    []models.Order `json:"data"`
}

// CreateOrder stores the posted order as pending. Fields are taken as sent.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeStoreError(w, oc.Logger, requestID, "order_read_failed", err)
		return
	}

	// Unmarshal rejects trailing data after the object
	var req models.CreateOrderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeStoreError(w, oc.Logger, requestID, "order_decode_failed", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	order := req.NewOrder(oc.Now())
	id, err := oc.Store.InsertOrder(ctx, order)
	if err != nil {
		writeStoreError(w, oc.Logger, requestID, "order_create_failed", err)
		return
	}
	order.ID = id

	oc.Logger.Info("order created",
		slog.String("action", "order_created"),
		slog.String("request_id", requestID),
		slog.String("order_id", id),
		slog.Float64("total", order.Total),
		slog.Int("items", len(order.Items)),
	)

	oc.notify(order, requestID)

	writeJSON(w, oc.Logger, http.StatusCreated, createOrderResponse{Success: true, OrderID: id})
}

// GetOrders lists the most recent orders, newest first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	orders, err := oc.Store.ListOrders(ctx, RecentOrdersLimit)
	if err != nil {
		writeStoreError(w, oc.Logger, requestID, "order_list_failed", err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	writeJSON(w, oc.Logger, http.StatusOK, ordersResponse{Success: true, Data: orders})
}

// notify hands order to every notifier in the background. Failures are
// only logged; the client already has its order id.
func (oc *OrderController) notify(order models.Order, requestID string) {
	for _, n := range oc.Notifiers {
		go func(n OrderNotifier) {
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()

			if err := n.OrderPlaced(ctx, order); err != nil {
				oc.Logger.Warn("order notification failed",
					slog.String("action", "notify_failed"),
					slog.String("request_id", requestID),
					slog.String("order_id", order.ID),
					slog.String("error", err.Error()),
				)
			}
		}(n)
	}
}
