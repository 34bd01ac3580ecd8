package usecase

import (
	"strconv"
	"time"

	"github.com/bizzyglass/glass-crm/internal/entity"
)

// MessageLedger owns id and timestamp assignment for a lead's thread.
// IDs are positional: for a lead with N messages the next append gets
// id N+1. Callers must hold the lead's lock around Append plus the
// persist that follows, or concurrent appends would mint the same id.
type MessageLedger struct {
	clock Clock
}

func NewMessageLedger(clock Clock) *MessageLedger {
	return &MessageLedger{clock: clock}
}

// Append grows the thread by exactly one entry and returns it. It never
// fails and never touches existing entries; making the mutated thread
// durable is the repository's job.
func (l *MessageLedger) Append(lead *entity.Lead, sender, body string) entity.Message {
	msg := entity.Message{
		ID:        strconv.Itoa(len(lead.Messages) + 1),
		Sender:    sender,
		Message:   body,
		Timestamp: l.clock.Now().UTC().Format(time.RFC3339),
	}
	lead.Messages = append(lead.Messages, msg)
	return msg
}
