package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"foodapp/models"
)

// storeTimeout bounds every store call made while serving a request
const storeTimeout = 10 * time.Second

// MenuStore reads the menu collection
type MenuStore interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
}

// OrderStore writes and reads the orders collection
type OrderStore interface {
	InsertOrder(ctx context.Context, order models.Order) (string, error)
	ListOrders(ctx context.Context, limit int64) ([]models.Order, error)
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to write response",
			slog.String("action", "response_encode_failed"),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}
}

// writeStoreError reports a failed store operation. Every failure maps to
// a 500 carrying only the error message.
func writeStoreError(w http.ResponseWriter, log *slog.Logger, requestID, action string, err error) {
	log.Error("store operation failed",
		slog.String("action", action),
		slog.String("request_id", requestID),
		slog.String("error", err.Error()),
	)
	writeJSON(w, log, http.StatusInternalServerError, errorResponse{Success: false, Error: err.Error()})
}
