// database/database.go
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	MenuCollection   = "menu"
	OrdersCollection = "orders"
)

const connectTimeout = 10 * time.Second

// ConnectDB creates a MongoDB client for uri and pings the primary.
// A ping failure is returned together with the usable client: the driver
// reconnects lazily, so callers may keep serving and fail per request.
func ConnectDB(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return client, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}
