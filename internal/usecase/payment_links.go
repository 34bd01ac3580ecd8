package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/bizzyglass/glass-crm/internal/infra/integration/stripe"
)

// The only currency we charge in.
const currency = "usd"

// PaymentLinkOrchestrator turns a quote request into one or two
// checkout sessions and collects their URLs.
type PaymentLinkOrchestrator struct {
	Gateway  PaymentGateway
	Composer *QuoteComposer
}

func NewPaymentLinkOrchestrator(gateway PaymentGateway, composer *QuoteComposer) *PaymentLinkOrchestrator {
	return &PaymentLinkOrchestrator{
		Gateway:  gateway,
		Composer: composer,
	}
}

// BuildLinks requests the session(s) the payment option calls for. The
// two sessions of "both" are not transactionally linked: when the
// deposit leg fails after the full leg succeeded, the full URL is still
// returned next to the error so the caller can retry just the deposit.
func (o *PaymentLinkOrchestrator) BuildLinks(ctx context.Context, req QuoteRequest) (PaymentLinks, error) {
	var links PaymentLinks

	wantFull := req.PaymentOption == "full" || req.PaymentOption == "both"
	wantDeposit := req.PaymentOption == "deposit" || req.PaymentOption == "both"

	if !wantFull && !wantDeposit {
		return links, NewInvalidPaymentOption(req.PaymentOption)
	}

	depositAmount := req.DepositAmount
	if depositAmount <= 0 && req.DepositPercentage > 0 {
		depositAmount = req.TotalAmount * req.DepositPercentage / 100
	}
	if wantDeposit && depositAmount <= 0 {
		return links, NewMissingDepositAmount()
	}

	if wantFull {
		url, err := o.createSession(ctx, req, "full", req.TotalAmount)
		if err != nil {
			return links, &PaymentGatewayError{Leg: "full", Links: links, Err: err}
		}
		links.FullURL = url
	}

	if wantDeposit {
		url, err := o.createSession(ctx, req, "deposit", depositAmount)
		if err != nil {
			return links, &PaymentGatewayError{Leg: "deposit", Links: links, Err: err}
		}
		links.DepositURL = url
	}

	return links, nil
}

func (o *PaymentLinkOrchestrator) createSession(ctx context.Context, req QuoteRequest, mode string, amount float64) (string, error) {
	return o.Gateway.CreateCheckoutSession(ctx, stripe.CheckoutSessionInput{
		AmountCents:    toCents(amount),
		Currency:       currency,
		Description:    o.Composer.InvoiceDescriptor(req, mode),
		LeadID:         req.LeadID,
		Mode:           mode,
		IdempotencyKey: uuid.NewString(),
	})
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
