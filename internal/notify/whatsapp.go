// Package notify composes customer-facing status messages and WhatsApp deep
// links. This is presentation-level glue: the core only hands over the
// order's status and the customer phone, the caller decides whether to send.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"pressdesk/internal/models"
)

// Default per-status templates, overridable via workspace settings
// (MessageTemplates keyed by status). Placeholders: {name}, {number},
// {status}, {due}.
var defaultTemplates = map[string]string{
	string(models.OrderStatusPending):    "Dear {name}, your order #{number} has been received. Current due: {due} Tk.",
	string(models.OrderStatusProcessing): "Dear {name}, your order #{number} is now in production.",
	string(models.OrderStatusReady):      "Dear {name}, your order #{number} is ready for pickup. Due amount: {due} Tk.",
	string(models.OrderStatusDelivered):  "Dear {name}, your order #{number} has been delivered. Thank you for your business!",
}

// ComposeStatusMessage fills the status template for an order. Workspace
// overrides win over the defaults.
func ComposeStatusMessage(o *models.Order, overrides map[string]string) string {
	tpl, ok := overrides[string(o.Status)]
	if !ok || tpl == "" {
		tpl = defaultTemplates[string(o.Status)]
	}
	r := strings.NewReplacer(
		"{name}", o.CustomerName,
		"{number}", fmt.Sprintf("%d", o.Number),
		"{status}", string(o.Status),
		"{due}", fmt.Sprintf("%d", o.DueAmount),
	)
	return r.Replace(tpl)
}

// WALink builds a wa.me deep link for a phone number and prefilled message.
// Non-digit characters are stripped from the phone (wa.me wants bare digits).
func WALink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message))
}
