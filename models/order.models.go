package models

import (
	"encoding/json"
	"errors"
	"time"
)

// OrderStatusPending is the only status this service ever assigns
const OrderStatusPending = "pending"

// CreatedAtLayout is the ISO-8601 layout used for Order.CreatedAt. It is
// fixed-width and always UTC so that string order matches time order.
const CreatedAtLayout = "2006-01-02T15:04:05.000000Z07:00"

// Order represents a placed order as stored and as listed.
// Customer fields are nil when the client did not send them.
type Order struct {
	ID              string  `json:"_id"`
	CustomerName    *string `json:"customerName"`
	CustomerPhone   *string `json:"customerPhone"`
	CustomerAddress *string `json:"customerAddress"`
	DeliveryTime    *string `json:"deliveryTime"`
	Items           []any   `json:"items"`
	Total           float64 `json:"total"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// ErrOrderNotObject is returned for an order body that is not a JSON object
var ErrOrderNotObject = errors.New("order body must be a JSON object")

// CreateOrderRequest is the body accepted by POST /api/orders. Every field
// is optional and nothing is validated; items and total are stored as sent.
// A field of the wrong JSON type is treated as absent.
type CreateOrderRequest struct {
	CustomerName    *string  `json:"customerName"`
	CustomerPhone   *string  `json:"customerPhone"`
	CustomerAddress *string  `json:"customerAddress"`
	DeliveryTime    *string  `json:"deliveryTime"`
	Items           []any    `json:"items"`
	Total           *float64 `json:"total"`
}

// UnmarshalJSON decodes an order body field by field. Only a body that is
// not an object fails. Customer fields sent as numbers or booleans keep
// their literal text.
func (r *CreateOrderRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return ErrOrderNotObject
	}

	*r = CreateOrderRequest{
		CustomerName:    textField(fields["customerName"]),
		CustomerPhone:   textField(fields["customerPhone"]),
		CustomerAddress: textField(fields["customerAddress"]),
		DeliveryTime:    textField(fields["deliveryTime"]),
	}

	if raw := fields["items"]; raw != nil {
		var items []any
		if err := json.Unmarshal(raw, &items); err == nil {
			r.Items = items
		}
	}

	if raw := fields["total"]; raw != nil && string(raw) != "null" {
		var total float64
		if err := json.Unmarshal(raw, &total); err == nil {
			r.Total = &total
		}
	}
	return nil
}

func textField(raw json.RawMessage) *string {
	if raw == nil || string(raw) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	switch v.(type) {
	case float64, bool:
		literal := string(raw)
		return &literal
	}
	return nil
}

// NewOrder builds the pending order to insert, applying the defaults for
// missing items (empty) and total (0).
func (r CreateOrderRequest) NewOrder(now time.Time) Order {
	items := r.Items
	if items == nil {
		items = []any{}
	}

	var total float64
	if r.Total != nil {
		total = *r.Total
	}

	return Order{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		DeliveryTime:    r.DeliveryTime,
		Items:           items,
		Total:           total,
		Status:          OrderStatusPending,
		CreatedAt:       now.UTC().Format(CreatedAtLayout),
	}
}
