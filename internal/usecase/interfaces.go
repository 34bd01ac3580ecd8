package usecase

import (
	"context"
	"time"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/infra/integration/stripe"
	"github.com/bizzyglass/glass-crm/internal/infra/queue"
)

// PaymentGateway creates one checkout session per call and returns its
// URL. The session itself stays opaque to this service.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, input stripe.CheckoutSessionInput) (string, error)
}

// SMSService is the best-effort outbound carrier. Implementations log
// transport failures and swallow them: a failed text never rolls back a
// committed ledger write.
type SMSService interface {
	Send(to, body string) error
}

type EmailService interface {
	SendLeadCaptured(to string, lead *entity.Lead) error
	SendPaymentReceived(to string, lead *entity.Lead, mode string, amountCents int64) error
}

type QueueProducerInterface interface {
	PublishPaymentEvent(ctx context.Context, payload queue.PaymentEventPayload) error
}

// Clock exists so ledger timestamps are fixable in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewSystemClock() Clock { return systemClock{} }
