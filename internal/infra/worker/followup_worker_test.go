package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/usecase"
)

type memRepo struct {
	leads map[int]*entity.Lead
}

func newMemRepo(leads ...*entity.Lead) *memRepo {
	r := &memRepo{leads: make(map[int]*entity.Lead)}
	for _, l := range leads {
		r.leads[l.ID] = l
	}
	return r
}

func (r *memRepo) Create(ctx context.Context, lead *entity.Lead) error { return nil }

func (r *memRepo) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	lead, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	return lead, nil
}

func (r *memRepo) FindAll(ctx context.Context) ([]entity.Lead, error) {
	out := []entity.Lead{}
	for _, l := range r.leads {
		out = append(out, *l)
	}
	return out, nil
}

func (r *memRepo) FindByPhoneSuffix(ctx context.Context, suffix string) ([]entity.Lead, error) {
	return nil, nil
}

func (r *memRepo) Save(ctx context.Context, lead *entity.Lead) error {
	r.leads[lead.ID] = lead
	return nil
}

func (r *memRepo) UpdateStatus(ctx context.Context, id int, status string) error { return nil }
func (r *memRepo) Delete(ctx context.Context, id int) error                      { return nil }

type silentSMS struct{ sent int }

func (s *silentSMS) Send(to, body string) error {
	s.sent++
	return nil
}

func newWorker(repo entity.LeadRepositoryInterface, sms usecase.SMSService) *QuoteFollowUpWorker {
	service := usecase.NewLeadConversationService(
		repo,
		usecase.NewMessageLedger(usecase.NewSystemClock()),
		usecase.NewInboundRouter(repo),
		nil,
		usecase.NewQuoteComposer(),
		sms,
		nil,
		usecase.NewLeadLocks(),
		"BizzyGlass",
		"",
	)
	return NewQuoteFollowUpWorker(repo, service)
}

func quotedLead(id int, lastSender string, age time.Duration) *entity.Lead {
	return &entity.Lead{
		ID:     id,
		Phone:  "555-000-1111",
		Status: entity.StatusQuoted,
		Messages: []entity.Message{{
			ID:        "1",
			Sender:    lastSender,
			Message:   "Hi! Here's your quote:",
			Timestamp: time.Now().Add(-age).UTC().Format(time.RFC3339),
		}},
	}
}

func TestFollowUpNudgesStaleQuotedLead(t *testing.T) {
	lead := quotedLead(1, entity.SenderOwner, 72*time.Hour)
	repo := newMemRepo(lead)
	sms := &silentSMS{}
	w := newWorker(repo, sms)

	w.sendFollowUps(context.Background())

	stored, _ := repo.FindByID(context.Background(), 1)
	assert.Len(t, stored.Messages, 2)
	assert.Equal(t, followUpBody, stored.Messages[1].Message)
	assert.Equal(t, entity.SenderOwner, stored.Messages[1].Sender)
	assert.Equal(t, 1, sms.sent)
}

func TestFollowUpNeverNudgesTwice(t *testing.T) {
	lead := quotedLead(1, entity.SenderOwner, 72*time.Hour)
	repo := newMemRepo(lead)
	sms := &silentSMS{}
	w := newWorker(repo, sms)

	w.sendFollowUps(context.Background())
	w.sendFollowUps(context.Background())

	stored, _ := repo.FindByID(context.Background(), 1)
	assert.Len(t, stored.Messages, 2)
	assert.Equal(t, 1, sms.sent)
}

func TestFollowUpSkipsRecentAndRepliedLeads(t *testing.T) {
	fresh := quotedLead(1, entity.SenderOwner, time.Hour)
	replied := quotedLead(2, entity.SenderClient, 72*time.Hour)
	closed := quotedLead(3, entity.SenderOwner, 72*time.Hour)
	closed.Status = entity.StatusClosed

	repo := newMemRepo(fresh, replied, closed)
	sms := &silentSMS{}
	w := newWorker(repo, sms)

	w.sendFollowUps(context.Background())

	assert.Equal(t, 0, sms.sent)
	for id := 1; id <= 3; id++ {
		stored, _ := repo.FindByID(context.Background(), id)
		assert.Len(t, stored.Messages, 1)
	}
}

func TestNeedsFollowUpEmptyThread(t *testing.T) {
	w := newWorker(newMemRepo(), &silentSMS{})

	lead := &entity.Lead{ID: 1, Status: entity.StatusQuoted}
	assert.False(t, w.needsFollowUp(lead))
}
