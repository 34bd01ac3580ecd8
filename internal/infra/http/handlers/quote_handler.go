package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bizzyglass/glass-crm/internal/infra/http/middleware"
	"github.com/bizzyglass/glass-crm/internal/usecase"
)

type QuoteHandler struct {
	Service ConversationService
}

func NewQuoteHandler(service ConversationService) *QuoteHandler {
	return &QuoteHandler{Service: service}
}

// HandleGenerate is the preview step: checkout sessions are created and
// the quote text is rendered, but nothing hits the ledger yet.
func (h *QuoteHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req usecase.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	output, err := h.Service.GenerateQuote(r.Context(), req)
	if err != nil {
		middleware.RecordCheckoutSession(req.PaymentOption, "error")
		writeError(w, err)
		return
	}

	if output.FullURL != "" {
		middleware.RecordCheckoutSession("full", "created")
	}
	if output.DepositURL != "" {
		middleware.RecordCheckoutSession("deposit", "created")
	}
	middleware.RecordQuoteGenerated()

	writeJSON(w, http.StatusOK, output)
}

type sendQuoteRequest struct {
	MessageContent string `json:"message_content"`
}

// HandleSend commits a previewed quote to the thread.
func (h *QuoteHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	var req sendQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MessageContent == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message_content is required"})
		return
	}

	lead, err := h.Service.SendFinalQuote(r.Context(), id, req.MessageContent)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}
