package database

import (
	"context"
	"fmt"

	"foodapp/models"
)

// Unavailable stands in for MongoStore when no client could be created at
// startup. Every call fails with the original connection error.
type Unavailable struct {
	Err error
}

func (u Unavailable) fail(op string) error {
	return fmt.Errorf("%s: store unavailable: %w", op, u.Err)
}

func (u Unavailable) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	return nil, u.fail("find menu")
}

func (u Unavailable) CountMenu(ctx context.Context) (int64, error) {
	return 0, u.fail("count menu")
}

func (u Unavailable) InsertMenu(ctx context.Context, items []models.MenuItem) error {
	return u.fail("insert menu")
}

func (u Unavailable) InsertOrder(ctx context.Context, order models.Order) (string, error) {
	return "", u.fail("insert order")
}

func (u Unavailable) ListOrders(ctx context.Context, limit int64) ([]models.Order, error) {
	return nil, u.fail("find orders")
}
