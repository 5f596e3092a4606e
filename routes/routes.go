// routes/routes.go
package routes

import (
	"log/slog"
	"net/http"

	"foodapp/controllers"
	"foodapp/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, log *slog.Logger, menuController *controllers.MenuController, orderController *controllers.OrderController) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", controllers.Health(log)).Methods("GET")

	// Menu routes
	api.HandleFunc("/menu", menuController.GetMenu).Methods("GET")

	// Order routes
	api.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	api.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
}

// NewHandler builds the full HTTP handler: routes, request ids, access
// logging and CORS.
func NewHandler(log *slog.Logger, menuController *controllers.MenuController, orderController *controllers.OrderController) http.Handler {
	router := mux.NewRouter()
	RegisterRoutes(router, log, menuController, orderController)

	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(log))

	return middleware.CORS()(router)
}
