package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"foodapp/middleware"
	"foodapp/models"
)

// MenuController handles menu requests
type MenuController struct {
	Store  MenuStore
	Logger *slog.Logger
}

// NewMenuController creates a new MenuController
func NewMenuController(store MenuStore, log *slog.Logger) *MenuController {
	return &MenuController{
		Store:  store,
		Logger: log,
	}
}

type menuResponse struct {
	Success bool              `json:"success"`
	Data    []models.MenuItem `json:"data"`
}

// GetMenu lists every menu item
func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	items, err := mc.Store.ListMenu(ctx)
	if err != nil {
		writeStoreError(w, mc.Logger, requestID, "menu_list_failed", err)
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	writeJSON(w, mc.Logger, http.StatusOK, menuResponse{Success: true, Data: items})
}
