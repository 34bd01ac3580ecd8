package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/usecase"
)

// ConversationService is the slice of the façade the HTTP layer needs.
// An interface so handler tests can mock it without a database.
type ConversationService interface {
	CreateLead(ctx context.Context, input usecase.CreateLeadInput) (*entity.Lead, error)
	AppendOwnerMessage(ctx context.Context, leadID int, body string) (*entity.Lead, error)
	AppendInboundMessage(ctx context.Context, rawSenderNumber, body string) (*usecase.InboundOutcome, error)
	GenerateQuote(ctx context.Context, req usecase.QuoteRequest) (*usecase.GenerateQuoteOutput, error)
	SendFinalQuote(ctx context.Context, leadID int, messageContent string) (*entity.Lead, error)
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// gatewayErrorResponse carries the surviving checkout URL of a partial
// failure so the dashboard can retry just the failed leg.
type gatewayErrorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	FailedLeg  string `json:"failed_leg"`
	FullURL    string `json:"full_url,omitempty"`
	DepositURL string `json:"deposit_url,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the use case error taxonomy onto status codes:
// unknown lead → 404, client-input errors → 400, the rest → 500.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrLeadNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "lead not found", Code: "LEAD_NOT_FOUND"})
		return
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: domainErr.Message, Code: domainErr.Code})
		return
	}

	var gatewayErr *usecase.PaymentGatewayError
	if errors.As(err, &gatewayErr) {
		writeJSON(w, http.StatusBadGateway, gatewayErrorResponse{
			Error:      gatewayErr.Error(),
			Code:       "PAYMENT_GATEWAY_ERROR",
			FailedLeg:  gatewayErr.Leg,
			FullURL:    gatewayErr.Links.FullURL,
			DepositURL: gatewayErr.Links.DepositURL,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "INTERNAL"})
}
