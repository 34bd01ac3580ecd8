package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/phone"
)

// LeadConversationService is the façade the HTTP layer and the workers
// talk to. Every mutating path goes ledger-first: the thread is
// appended and persisted before any outbound notification, and a
// notification failure never undoes the commit.
type LeadConversationService struct {
	Repo         entity.LeadRepositoryInterface
	Ledger       *MessageLedger
	Router       *InboundRouter
	Orchestrator *PaymentLinkOrchestrator
	Composer     *QuoteComposer
	SMS          SMSService
	Email        EmailService
	Locks        *LeadLocks

	BusinessName     string
	OwnerNotifyEmail string
}

func NewLeadConversationService(
	repo entity.LeadRepositoryInterface,
	ledger *MessageLedger,
	router *InboundRouter,
	orchestrator *PaymentLinkOrchestrator,
	composer *QuoteComposer,
	smsService SMSService,
	emailService EmailService,
	locks *LeadLocks,
	businessName string,
	ownerNotifyEmail string,
) *LeadConversationService {
	return &LeadConversationService{
		Repo:             repo,
		Ledger:           ledger,
		Router:           router,
		Orchestrator:     orchestrator,
		Composer:         composer,
		SMS:              smsService,
		Email:            emailService,
		Locks:            locks,
		BusinessName:     businessName,
		OwnerNotifyEmail: ownerNotifyEmail,
	}
}

// AppendOwnerMessage appends a message typed by the shop owner and
// texts it to the lead after the write is durable.
func (s *LeadConversationService) AppendOwnerMessage(ctx context.Context, leadID int, body string) (*entity.Lead, error) {
	lead, err := s.appendAndSave(ctx, leadID, entity.SenderOwner, body, "")
	if err != nil {
		return nil, err
	}

	s.SMS.Send(phone.ToE164(lead.Phone), body)
	return lead, nil
}

// AppendInboundMessage records a text the lead sent us. An unknown
// sender yields the "ignored" outcome, not an error: the carrier
// retries forever unless it gets its success acknowledgment.
func (s *LeadConversationService) AppendInboundMessage(ctx context.Context, rawSenderNumber, body string) (*InboundOutcome, error) {
	match, err := s.Router.Route(ctx, rawSenderNumber)
	if err != nil {
		return nil, err
	}
	if match == nil {
		log.Printf("⚠️ inbound message from unknown number %s ignored", rawSenderNumber)
		return &InboundOutcome{Status: InboundIgnored}, nil
	}

	// No outbound send here: the message is already with the client.
	lead, err := s.appendAndSave(ctx, match.ID, entity.SenderClient, body, "")
	if err != nil {
		return nil, err
	}

	return &InboundOutcome{Status: InboundRecorded, Lead: lead}, nil
}

// GenerateQuote is the preview step: it creates the checkout sessions
// and renders the quote text, but commits nothing to the ledger.
func (s *LeadConversationService) GenerateQuote(ctx context.Context, req QuoteRequest) (*GenerateQuoteOutput, error) {
	links, err := s.Orchestrator.BuildLinks(ctx, req)
	if err != nil {
		return nil, err
	}

	return &GenerateQuoteOutput{
		QuoteMessage: s.Composer.Compose(req, links),
		FullURL:      links.FullURL,
		DepositURL:   links.DepositURL,
	}, nil
}

// SendFinalQuote commits a previewed quote: append as owner, move the
// lead to QUOTED, then best-effort text it out.
func (s *LeadConversationService) SendFinalQuote(ctx context.Context, leadID int, messageContent string) (*entity.Lead, error) {
	lead, err := s.appendAndSave(ctx, leadID, entity.SenderOwner, messageContent, entity.StatusQuoted)
	if err != nil {
		return nil, err
	}

	s.SMS.Send(phone.ToE164(lead.Phone), messageContent)
	return lead, nil
}

// appendAndSave is the single serialized read-modify-write path for an
// existing lead's thread. The per-lead lock covers load, append and
// save only; callers notify after it returns.
func (s *LeadConversationService) appendAndSave(ctx context.Context, leadID int, sender, body, newStatus string) (*entity.Lead, error) {
	s.Locks.Lock(leadID)
	defer s.Locks.Unlock(leadID)

	lead, err := s.Repo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	s.Ledger.Append(lead, sender, body)
	if newStatus != "" {
		lead.Status = newStatus
	}

	if err := s.Repo.Save(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: fmt.Sprintf("failed to persist lead %d: %v", leadID, err),
		}
	}

	return lead, nil
}
