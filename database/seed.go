package database

import (
	"context"

	"foodapp/models"
)

// DefaultMenu is the catalog inserted into an empty menu collection
var DefaultMenu = []models.MenuItem{
	{Name: "Chicken Biryani", Description: "Fragrant basmati rice cooked with tender chicken and aromatic spices", Price: 250, Emoji: "🍛"},
	{Name: "Margherita Pizza", Description: "Classic pizza with fresh mozzarella, tomato sauce, and basil", Price: 300, Emoji: "🍕"},
	{Name: "Cheese Burger", Description: "Juicy beef patty with cheese, lettuce, tomato, and special sauce", Price: 180, Emoji: "🍔"},
	{Name: "Creamy Pasta", Description: "Penne pasta in rich white sauce with mushrooms and herbs", Price: 220, Emoji: "🍝"},
	{Name: "Caesar Salad", Description: "Fresh romaine lettuce with caesar dressing, croutons, and parmesan", Price: 150, Emoji: "🥗"},
	{Name: "Chocolate Brownie", Description: "Warm chocolate brownie with vanilla ice cream", Price: 120, Emoji: "🍰"},
}

// MenuSeeder is the part of a store needed to seed the menu
type MenuSeeder interface {
	CountMenu(ctx context.Context) (int64, error)
	InsertMenu(ctx context.Context, items []models.MenuItem) error
}

// SeedMenu inserts DefaultMenu when the menu collection is empty and
// returns how many items it inserted. Existing rows are never touched.
func SeedMenu(ctx context.Context, s MenuSeeder) (int, error) {
	count, err := s.CountMenu(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	if err := s.InsertMenu(ctx, DefaultMenu); err != nil {
		return 0, err
	}
	return len(DefaultMenu), nil
}
