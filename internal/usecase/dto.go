package usecase

import "github.com/bizzyglass/glass-crm/internal/entity"

type CreateLeadInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     string `json:"year"`
	BodyType string `json:"bodyType"`
	VIN      string `json:"vin,omitempty"`

	Urgency           string   `json:"urgency"`
	DamageDescription string   `json:"damageDescription"`
	GlassToReplace    []string `json:"glassToReplace,omitempty"`
	AddonServices     []string `json:"addonServices,omitempty"`

	PreferredDate      string   `json:"preferredDate,omitempty"`
	PreferredTime      string   `json:"preferredTime,omitempty"`
	PreferredDaysTimes []string `json:"preferredDaysTimes,omitempty"`
}

// QuoteRequest drives one quote preview. Transient, never persisted.
type QuoteRequest struct {
	LeadID            int      `json:"lead_id"`
	PaymentOption     string   `json:"payment_option"` // full | deposit | both
	TotalAmount       float64  `json:"total_amount"`
	DepositAmount     float64  `json:"deposit_amount,omitempty"`
	DepositPercentage float64  `json:"deposit_percentage,omitempty"`
	CustomerName      string   `json:"customer_name"`
	VehicleMake       string   `json:"vehicle_make"`
	VehicleModel      string   `json:"vehicle_model"`
	ServicesSummary   string   `json:"services_summary"`
	AppointmentSlots  []string `json:"appointment_slots,omitempty"`
	// InvoiceDescription is appended to the gateway descriptor, not to
	// the customer-facing quote text.
	InvoiceDescription string `json:"invoice_description,omitempty"`
}

// PaymentLinks holds the checkout URLs returned by the gateway. Empty
// string means the leg was not requested (or failed).
type PaymentLinks struct {
	FullURL    string `json:"full_url,omitempty"`
	DepositURL string `json:"deposit_url,omitempty"`
}

type GenerateQuoteOutput struct {
	QuoteMessage string `json:"quote_message"`
	FullURL      string `json:"full_url,omitempty"`
	DepositURL   string `json:"deposit_url,omitempty"`
}

// Inbound webhook outcomes. "ignored" is a success from the carrier's
// point of view: it must always get its 200 back.
const (
	InboundRecorded = "recorded"
	InboundIgnored  = "ignored"
)

type InboundOutcome struct {
	Status string       `json:"status"`
	Lead   *entity.Lead `json:"-"`
}
