package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bizzyglass/glass-crm/internal/infra/queue"
)

const completedEvent = `{
	"type": "checkout.session.completed",
	"data": {
		"object": {
			"id": "cs_test_abc",
			"amount_total": 50000,
			"metadata": {"lead_id": "7", "mode": "full"}
		}
	}
}`

func signBody(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func paymentWebhookRequest(body, signature string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewReader([]byte(body)))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	return req
}

func TestPaymentWebhookEnqueuesCompletedSession(t *testing.T) {
	producer := new(MockQueueProducer)
	handler := NewWebhookHandler(producer)

	producer.On("PublishPaymentEvent", mock.Anything, queue.PaymentEventPayload{
		LeadID:      7,
		Mode:        "full",
		AmountCents: 50000,
		SessionID:   "cs_test_abc",
		Origin:      "WEBHOOK_STRIPE",
	}).Return(nil)

	rec := httptest.NewRecorder()
	handler.Handle(rec, paymentWebhookRequest(completedEvent, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	producer.AssertExpectations(t)
}

func TestPaymentWebhookIgnoresOtherEventTypes(t *testing.T) {
	producer := new(MockQueueProducer)
	handler := NewWebhookHandler(producer)

	body := `{"type": "payment_intent.created", "data": {"object": {"id": "pi_1"}}}`
	rec := httptest.NewRecorder()
	handler.Handle(rec, paymentWebhookRequest(body, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	producer.AssertNotCalled(t, "PublishPaymentEvent")
}

func TestPaymentWebhookAcknowledgesForeignSession(t *testing.T) {
	producer := new(MockQueueProducer)
	handler := NewWebhookHandler(producer)

	// Completed session without our lead_id metadata: not ours.
	body := `{"type": "checkout.session.completed", "data": {"object": {"id": "cs_x", "metadata": {}}}}`
	rec := httptest.NewRecorder()
	handler.Handle(rec, paymentWebhookRequest(body, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	producer.AssertNotCalled(t, "PublishPaymentEvent")
}

func TestPaymentWebhookVerifiesSignature(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	producer := new(MockQueueProducer)
	handler := NewWebhookHandler(producer)
	producer.On("PublishPaymentEvent", mock.Anything, mock.Anything).Return(nil)

	// Valid signature passes.
	rec := httptest.NewRecorder()
	handler.Handle(rec, paymentWebhookRequest(completedEvent, signBody("whsec_test", completedEvent)))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Wrong signature rejected.
	rec = httptest.NewRecorder()
	handler.Handle(rec, paymentWebhookRequest(completedEvent, signBody("whsec_other", completedEvent)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Missing signature rejected when a secret is configured.
	rec = httptest.NewRecorder()
	handler.Handle(rec, paymentWebhookRequest(completedEvent, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	producer.AssertNumberOfCalls(t, "PublishPaymentEvent", 1)
}

func TestPaymentWebhookQueueFailureTriggersRedelivery(t *testing.T) {
	producer := new(MockQueueProducer)
	handler := NewWebhookHandler(producer)

	producer.On("PublishPaymentEvent", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	rec := httptest.NewRecorder()
	handler.Handle(rec, paymentWebhookRequest(completedEvent, ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
