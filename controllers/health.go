package controllers

import (
	"log/slog"
	"net/http"
)

// Health reports liveness. It never touches the store.
func Health(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
	}
}
