// Package sms wraps the carrier client into the best-effort notifier
// the conversation core expects: transport failures are logged and
// swallowed, they never travel back into a committed write.
package sms

import (
	"log"

	"github.com/bizzyglass/glass-crm/internal/infra/http/middleware"
	"github.com/bizzyglass/glass-crm/internal/infra/integration/twilio"
)

type Notifier struct {
	client *twilio.Client
}

func NewNotifier(client *twilio.Client) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) Send(to, body string) error {
	if to == "" || body == "" {
		log.Printf("⚠️ SMS: skipping send with empty to/body (to: %q)", to)
		return nil
	}

	if err := n.client.SendMessage(twilio.SendMessageInput{To: to, Body: body}); err != nil {
		log.Printf("⚠️ SMS: failed to send to %s: %v", to, err)
		middleware.RecordIntegrationError("twilio")
		return nil
	}

	return nil
}
