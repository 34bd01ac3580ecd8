package entity

import (
	"context"
	"errors"
	"time"
)

var ErrLeadNotFound = errors.New("lead not found")

// Lead statuses. Transitions happen at the edges (dashboard, payment
// worker), never inside the conversation core.
const (
	StatusNew       = "NEW"
	StatusQuoted    = "QUOTED"
	StatusScheduled = "SCHEDULED"
	StatusClosed    = "CLOSED"
)

// Message senders.
const (
	SenderOwner  = "owner"
	SenderClient = "client"
	SenderSystem = "system"
)

// Message is one entry in a lead's conversation ledger. IDs are
// positional ("1".."N" within the lead) and entries are never mutated
// or deleted once appended.
type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Lead is a prospective customer plus their message thread and the
// details of the glass job they asked about. Phone is stored exactly as
// entered; derived forms live in the phone package.
type Lead struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

	// Vehicle
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     string `json:"year"`
	BodyType string `json:"bodyType"`
	VIN      string `json:"vin,omitempty"`

	// Damage
	Urgency           string   `json:"urgency"`
	DamageDescription string   `json:"damageDescription"`
	GlassToReplace    []string `json:"glassToReplace,omitempty"`
	AddonServices     []string `json:"addonServices,omitempty"`

	// Scheduling preferences
	PreferredDate      string   `json:"preferredDate,omitempty"`
	PreferredTime      string   `json:"preferredTime,omitempty"`
	PreferredDaysTimes []string `json:"preferredDaysTimes,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Messages  []Message `json:"messages"`
}

func (l *Lead) Validate() error {
	if l.FirstName == "" {
		return errors.New("first name is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	if l.Make == "" || l.Model == "" {
		return errors.New("vehicle make and model are required")
	}
	return nil
}

// LastMessage returns the newest ledger entry, or nil for an empty thread.
func (l *Lead) LastMessage() *Message {
	if len(l.Messages) == 0 {
		return nil
	}
	return &l.Messages[len(l.Messages)-1]
}

type LeadRepositoryInterface interface {
	// Create persists a new lead and assigns ID and CreatedAt.
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id int) (*Lead, error)
	FindAll(ctx context.Context) ([]Lead, error)
	// FindByPhoneSuffix returns leads whose stored phone, reduced to
	// digits, ends with the given suffix, in stable id order.
	FindByPhoneSuffix(ctx context.Context, suffix string) ([]Lead, error)
	// Save writes the whole record back, message thread included.
	Save(ctx context.Context, lead *Lead) error
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}
