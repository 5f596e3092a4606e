// utils/email.go
package utils

import (
	"context"
	"fmt"
	"html"
	"strings"

	"foodapp/models"

	"github.com/keighl/postmark"
)

// EmailService sends new-order notifications to the kitchen using Postmark
type EmailService struct {
	client   *postmark.Client
	sender   string
	notifyTo string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(apiToken, sender, notifyTo string) *EmailService {
	return &EmailService{
		client:   postmark.NewClient(apiToken, ""),
		sender:   sender,
		notifyTo: notifyTo,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// OrderPlaced emails the kitchen a summary of order
func (es *EmailService) OrderPlaced(ctx context.Context, order models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	subject, body := OrderNotificationEmail(order)
	return es.SendEmail(es.notifyTo, subject, body)
}

// OrderNotificationEmail renders the subject and HTML body for a new order.
// Customer-supplied text is escaped.
func OrderNotificationEmail(order models.Order) (string, string) {
	subject := fmt.Sprintf("New order %s", order.ID)

	var b strings.Builder
	b.WriteString("<strong>New order received</strong><br><br>")
	fmt.Fprintf(&b, "Order ID: <strong>%s</strong><br>", html.EscapeString(order.ID))
	fmt.Fprintf(&b, "Customer: %s<br>", optional(order.CustomerName))
	fmt.Fprintf(&b, "Phone: %s<br>", optional(order.CustomerPhone))
	fmt.Fprintf(&b, "Address: %s<br>", optional(order.CustomerAddress))
	fmt.Fprintf(&b, "Delivery time: %s<br>", optional(order.DeliveryTime))
	fmt.Fprintf(&b, "Items: %d<br>", len(order.Items))
	fmt.Fprintf(&b, "Total: <strong>%g</strong><br>", order.Total)
	fmt.Fprintf(&b, "Placed at: %s", html.EscapeString(order.CreatedAt))

	return subject, b.String()
}

func optional(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return html.EscapeString(*s)
}
