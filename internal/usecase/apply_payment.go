package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/infra/queue"
)

// ApplyPaymentUseCase is what the queue worker runs when the gateway
// reports a completed checkout session: record it on the thread as a
// system message, move the lead to SCHEDULED, tell the owner.
type ApplyPaymentUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Ledger *MessageLedger
	Locks  *LeadLocks
	Email  EmailService

	OwnerNotifyEmail string
}

func NewApplyPaymentUseCase(
	repo entity.LeadRepositoryInterface,
	ledger *MessageLedger,
	locks *LeadLocks,
	emailService EmailService,
	ownerNotifyEmail string,
) *ApplyPaymentUseCase {
	return &ApplyPaymentUseCase{
		Repo:             repo,
		Ledger:           ledger,
		Locks:            locks,
		Email:            emailService,
		OwnerNotifyEmail: ownerNotifyEmail,
	}
}

func (uc *ApplyPaymentUseCase) Execute(ctx context.Context, payload queue.PaymentEventPayload) error {
	log.Printf("🔄 applying payment event: lead=%d mode=%s session=%s", payload.LeadID, payload.Mode, payload.SessionID)

	lead, err := uc.apply(ctx, payload)
	if err != nil {
		return err
	}

	if uc.Email != nil && uc.OwnerNotifyEmail != "" {
		if err := uc.Email.SendPaymentReceived(uc.OwnerNotifyEmail, lead, payload.Mode, payload.AmountCents); err != nil {
			log.Printf("⚠️ payment applied but owner email failed: %v", err)
		}
	}

	log.Printf("✅ payment recorded for %s %s (lead %d)", lead.FirstName, lead.LastName, lead.ID)
	return nil
}

func (uc *ApplyPaymentUseCase) apply(ctx context.Context, payload queue.PaymentEventPayload) (*entity.Lead, error) {
	uc.Locks.Lock(payload.LeadID)
	defer uc.Locks.Unlock(payload.LeadID)

	lead, err := uc.Repo.FindByID(ctx, payload.LeadID)
	if err != nil {
		return nil, fmt.Errorf("payment event for unknown lead %d: %w", payload.LeadID, err)
	}

	label := "full payment"
	if payload.Mode == "deposit" {
		label = "deposit"
	}
	body := fmt.Sprintf("✅ Payment received (%s): $%.2f. Your appointment is confirmed!",
		label, float64(payload.AmountCents)/100)

	uc.Ledger.Append(lead, entity.SenderSystem, body)
	lead.Status = entity.StatusScheduled

	if err := uc.Repo.Save(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to persist payment on lead %d: %w", payload.LeadID, err)
	}

	return lead, nil
}
