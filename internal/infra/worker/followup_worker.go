package worker

import (
	"context"
	"log"
	"time"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/usecase"
)

const followUpBody = "Just checking in! Your quote is still available — reply here if you have any questions or want to grab a time."

// QuoteFollowUpWorker nudges quoted leads that went quiet. It goes
// through the façade so per-lead append serialization holds even while
// the API is handling the same lead.
type QuoteFollowUpWorker struct {
	Repo    entity.LeadRepositoryInterface
	Service *usecase.LeadConversationService

	followUpWindow time.Duration
	tickInterval   time.Duration
}

func NewQuoteFollowUpWorker(repo entity.LeadRepositoryInterface, service *usecase.LeadConversationService) *QuoteFollowUpWorker {
	return &QuoteFollowUpWorker{
		Repo:           repo,
		Service:        service,
		followUpWindow: 48 * time.Hour,
		tickInterval:   1 * time.Hour,
	}
}

func (w *QuoteFollowUpWorker) Start(ctx context.Context) {
	log.Println("🕒 quote follow-up worker started (48h window)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sendFollowUps(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ quote follow-up worker stopped")
			return
		case <-ticker.C:
			w.sendFollowUps(ctx)
		}
	}
}

func (w *QuoteFollowUpWorker) sendFollowUps(ctx context.Context) {
	leads, err := w.Repo.FindAll(ctx)
	if err != nil {
		log.Printf("❌ follow-up scan failed: %v", err)
		return
	}

	sent := 0
	for i := range leads {
		lead := &leads[i]
		if !w.needsFollowUp(lead) {
			continue
		}

		if _, err := w.Service.AppendOwnerMessage(ctx, lead.ID, followUpBody); err != nil {
			log.Printf("⚠️ follow-up for lead %d failed: %v", lead.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		log.Printf("✅ sent %d quote follow-up(s)", sent)
	}
}

// needsFollowUp: quoted, the last word was ours, it's been quiet past
// the window, and we haven't already nudged.
func (w *QuoteFollowUpWorker) needsFollowUp(lead *entity.Lead) bool {
	if lead.Status != entity.StatusQuoted {
		return false
	}

	last := lead.LastMessage()
	if last == nil || last.Sender == entity.SenderClient {
		return false
	}
	if last.Message == followUpBody {
		return false
	}

	ts, err := time.Parse(time.RFC3339, last.Timestamp)
	if err != nil {
		return false
	}
	return time.Since(ts) > w.followUpWindow
}
