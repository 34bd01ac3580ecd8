package handlers

import (
	"log"
	"net/http"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/infra/http/middleware"
	"github.com/bizzyglass/glass-crm/internal/infra/integration/twilio"
	"github.com/bizzyglass/glass-crm/internal/usecase"
)

// SMSWebhookHandler receives inbound texts from the carrier. The
// carrier retries until it gets a success, so an unknown sender is
// acknowledged with 200 just like a routed one.
type SMSWebhookHandler struct {
	Service ConversationService
}

func NewSMSWebhookHandler(service ConversationService) *SMSWebhookHandler {
	return &SMSWebhookHandler{Service: service}
}

func (h *SMSWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	inbound, err := twilio.ParseInbound(r)
	if err != nil || inbound.From == "" {
		// Malformed carrier payload; acknowledge so it doesn't retry.
		log.Printf("⚠️ inbound webhook with bad payload: %v", err)
		ackTwiML(w)
		return
	}

	outcome, err := h.Service.AppendInboundMessage(r.Context(), inbound.From, inbound.Body)
	if err != nil {
		// Store failure: let the carrier retry later.
		log.Printf("❌ failed to record inbound message from %s: %v", inbound.From, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if outcome.Status == usecase.InboundIgnored {
		middleware.RecordInboundIgnored()
	} else {
		middleware.RecordMessageAppended(entity.SenderClient)
	}

	ackTwiML(w)
}

func ackTwiML(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<Response></Response>"))
}
