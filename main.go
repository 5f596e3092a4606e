// main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"foodapp/config"
	"foodapp/controllers"
	"foodapp/database"
	"foodapp/logger"
	"foodapp/messaging"
	"foodapp/routes"
	"foodapp/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.New("order-service", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	// Seed the menu before serving traffic
	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if n, err := database.SeedMenu(seedCtx, store); err != nil {
		log.Error("menu seeding failed", slog.String("action", "menu_seed_failed"), slog.String("error", err.Error()))
	} else if n > 0 {
		log.Info("menu initialized", slog.String("action", "menu_seeded"), slog.Int("items", n))
	}
	cancel()

	notifiers, closeNotifiers := openNotifiers(cfg, log)
	defer closeNotifiers()

	// Initialize controllers
	menuController := controllers.NewMenuController(store, log)
	orderController := controllers.NewOrderController(store, log, notifiers...)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewHandler(log, menuController, orderController),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server started", slog.String("action", "service_started"), slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", slog.String("action", "server_failed"), slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down", slog.String("action", "graceful_shutdown"))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", slog.String("action", "shutdown_failed"), slog.String("error", err.Error()))
	}
}

type storefrontStore interface {
	controllers.MenuStore
	controllers.OrderStore
	database.MenuSeeder
}

// openStore connects to MongoDB. Connection problems are logged and never
// stop startup; requests fail individually instead.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (storefrontStore, func()) {
	client, err := database.ConnectDB(ctx, cfg.Mongo.URI)
	if client == nil {
		log.Error("mongodb unavailable", slog.String("action", "db_connect_failed"), slog.String("error", err.Error()))
		return database.Unavailable{Err: err}, func() {}
	}
	if err != nil {
		log.Error("mongodb ping failed", slog.String("action", "db_ping_failed"), slog.String("error", err.Error()))
	} else {
		log.Info("connected to mongodb", slog.String("action", "db_connected"), slog.String("database", cfg.Mongo.Database))
	}

	return database.NewMongoStore(client, cfg.Mongo.Database), func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error("mongodb disconnect failed", slog.String("error", err.Error()))
		}
	}
}

// openNotifiers builds the optional new-order notifiers. One that cannot be
// initialized is logged and skipped.
func openNotifiers(cfg *config.Config, log *slog.Logger) ([]controllers.OrderNotifier, func()) {
	var notifiers []controllers.OrderNotifier
	closers := []func() error{}

	if cfg.EmailEnabled() {
		notifiers = append(notifiers, utils.NewEmailService(cfg.Email.Token, cfg.Email.Sender, cfg.Email.NotifyTo))
		log.Info("order emails enabled", slog.String("action", "email_enabled"), slog.String("to", cfg.Email.NotifyTo))
	}

	if cfg.RabbitMQ.URL != "" {
		publisher, err := messaging.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Error("rabbitmq unavailable", slog.String("action", "rabbitmq_connect_failed"), slog.String("error", err.Error()))
		} else {
			notifiers = append(notifiers, publisher)
			closers = append(closers, publisher.Close)
			log.Info("connected to rabbitmq", slog.String("action", "rabbitmq_connected"), slog.String("exchange", cfg.RabbitMQ.Exchange))
		}
	}

	return notifiers, func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Error("notifier close failed", slog.String("error", err.Error()))
			}
		}
	}
}
