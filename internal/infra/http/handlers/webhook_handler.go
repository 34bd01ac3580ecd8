package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/bizzyglass/glass-crm/internal/infra/queue"
	"github.com/bizzyglass/glass-crm/internal/usecase"
)

// WebhookHandler receives checkout events from the payment gateway and
// hands completed sessions to the queue. Applying them to the lead is
// the worker's job.
type WebhookHandler struct {
	Producer usecase.QueueProducerInterface
}

func NewWebhookHandler(producer usecase.QueueProducerInterface) *WebhookHandler {
	return &WebhookHandler{Producer: producer}
}

type checkoutEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID          string            `json:"id"`
			AmountTotal int64             `json:"amount_total"`
			Metadata    map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	if !verifySignature(body, r.Header.Get("Stripe-Signature")) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid_signature"})
		return
	}

	var event checkoutEvent
	if err := json.Unmarshal(body, &event); err != nil {
		http.Error(w, "bad JSON", http.StatusBadRequest)
		return
	}

	if event.Type != "checkout.session.completed" {
		w.WriteHeader(http.StatusOK)
		return
	}

	leadID, err := strconv.Atoi(event.Data.Object.Metadata["lead_id"])
	if err != nil {
		// A session we didn't create. Acknowledge and move on.
		log.Printf("⚠️ completed session %s without lead_id metadata", event.Data.Object.ID)
		w.WriteHeader(http.StatusOK)
		return
	}

	payload := queue.PaymentEventPayload{
		LeadID:      leadID,
		Mode:        event.Data.Object.Metadata["mode"],
		AmountCents: event.Data.Object.AmountTotal,
		SessionID:   event.Data.Object.ID,
		Origin:      "WEBHOOK_STRIPE",
	}

	if err := h.Producer.PublishPaymentEvent(r.Context(), payload); err != nil {
		// 500 so the gateway redelivers the event.
		log.Printf("❌ failed to enqueue payment event for lead %d: %v", leadID, err)
		http.Error(w, "queue error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// verifySignature checks the HMAC-SHA256 of the raw body when a webhook
// secret is configured. Without one (local dev) everything passes.
func verifySignature(body []byte, signature string) bool {
	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		return true
	}
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
