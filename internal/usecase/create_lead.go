package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/phone"
)

// CreateLead persists a new lead, writes the welcome message into its
// ledger, and only then texts the welcome out. The send is best effort:
// the lead and its first message stay committed whatever the carrier
// does.
func (s *LeadConversationService) CreateLead(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	validationErrors := ValidateCreateLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	lead := &entity.Lead{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Phone:              input.Phone, // stored verbatim, never reformatted
		Email:              input.Email,
		Make:               input.Make,
		Model:              input.Model,
		Year:               input.Year,
		BodyType:           input.BodyType,
		VIN:                input.VIN,
		Urgency:            input.Urgency,
		DamageDescription:  input.DamageDescription,
		GlassToReplace:     input.GlassToReplace,
		AddonServices:      input.AddonServices,
		PreferredDate:      input.PreferredDate,
		PreferredTime:      input.PreferredTime,
		PreferredDaysTimes: input.PreferredDaysTimes,
		Status:             entity.StatusNew,
		Messages:           []entity.Message{},
	}

	welcome := s.welcomeMessage(lead)

	txn := NewTransaction()

	txn.AddOperation("create_lead", func(ctx context.Context) error {
		return s.Repo.Create(ctx, lead)
	})
	txn.AddCompensation("delete_lead", func(ctx context.Context) error {
		return s.Repo.Delete(ctx, lead.ID)
	})

	// The row is visible the moment Create commits, so an inbound text
	// can already be racing us. appendAndSave takes the per-lead lock,
	// keeping the welcome from clobbering a concurrently appended reply.
	txn.AddOperation("append_welcome", func(ctx context.Context) error {
		updated, err := s.appendAndSave(ctx, lead.ID, entity.SenderOwner, welcome, "")
		if err != nil {
			return err
		}
		lead = updated
		return nil
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	s.SMS.Send(phone.ToE164(lead.Phone), welcome)

	if s.Email != nil && s.OwnerNotifyEmail != "" {
		// SMTP is slow; don't make the caller wait for it.
		go func() {
			if err := s.Email.SendLeadCaptured(s.OwnerNotifyEmail, lead); err != nil {
				log.Printf("⚠️ lead %d created but owner email failed: %v", lead.ID, err)
			}
		}()
	}

	return lead, nil
}

func (s *LeadConversationService) welcomeMessage(lead *entity.Lead) string {
	vehicle := fmt.Sprintf("%s %s", lead.Make, lead.Model)
	if lead.Year != "" {
		vehicle = lead.Year + " " + vehicle
	}
	return fmt.Sprintf(
		"Hi %s! Thanks for reaching out to %s about your %s. We'll text you a quote shortly. Questions? Just reply to this message!",
		lead.FirstName, s.BusinessName, vehicle,
	)
}
