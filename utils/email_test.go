package utils

import (
	"context"
	"testing"

	"foodapp/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderNotificationEmail(t *testing.T) {
	name := "Asha <script>"
	phone := "98765"
	order := models.Order{
		ID:            "65f1c0ffee0000000000abcd",
		CustomerName:  &name,
		CustomerPhone: &phone,
		Items:         []any{map[string]any{"name": "Caesar Salad"}, map[string]any{"name": "Cheese Burger"}},
		Total:         330,
		Status:        models.OrderStatusPending,
		CreatedAt:     "2024-03-01T12:30:00.000000Z",
	}

	subject, body := OrderNotificationEmail(order)

	assert.Equal(t, "New order 65f1c0ffee0000000000abcd", subject)
	assert.Contains(t, body, "Asha &lt;script&gt;")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "Phone: 98765")
	assert.Contains(t, body, "Address: -")
	assert.Contains(t, body, "Items: 2")
	assert.Contains(t, body, "Total: <strong>330</strong>")
}

func TestOrderPlaced_CancelledContext(t *testing.T) {
	es := NewEmailService("token", "shop@example.com", "kitchen@example.com")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := es.OrderPlaced(ctx, models.Order{ID: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
