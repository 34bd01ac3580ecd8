package usecase

import (
	"fmt"
	"strings"
)

// Stripe caps the product descriptor length.
const maxDescriptorLen = 200

// QuoteComposer renders the customer-facing quote text and the invoice
// descriptor sent to the payment gateway. Both are pure functions of
// their inputs so a resend produces byte-identical output.
type QuoteComposer struct{}

func NewQuoteComposer() *QuoteComposer {
	return &QuoteComposer{}
}

func (c *QuoteComposer) Compose(req QuoteRequest, links PaymentLinks) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s! Here's your quote:\n\n", req.CustomerName)
	b.WriteString(req.ServicesSummary)
	b.WriteString("\n")

	if links.FullURL != "" {
		fmt.Fprintf(&b, "\n💳 Pay in full ($%.2f): %s", req.TotalAmount, links.FullURL)
	}
	if links.DepositURL != "" {
		fmt.Fprintf(&b, "\n💳 Pay deposit ($%.2f): %s", c.depositAmount(req), links.DepositURL)
	}

	if len(req.AppointmentSlots) > 0 {
		b.WriteString("\n\n📅 Available times:\n")
		b.WriteString(strings.Join(req.AppointmentSlots, "\n"))
	} else {
		b.WriteString("\n\n📅 Contact us to schedule your appointment!")
	}

	b.WriteString("\n\nQuestions? Just reply to this message!")
	return b.String()
}

// InvoiceDescriptor builds the line-item name the gateway shows on the
// checkout page and receipt. mode is "full" or "deposit".
func (c *QuoteComposer) InvoiceDescriptor(req QuoteRequest, mode string) string {
	prefix := "Full Payment"
	if mode == "deposit" {
		prefix = "Deposit"
	}

	desc := fmt.Sprintf("%s: Service for %s (%s %s)",
		prefix, req.CustomerName, req.VehicleMake, req.VehicleModel)

	if cleaned := cleanSummary(req.ServicesSummary); cleaned != "" {
		desc += " - Services: " + cleaned
	}
	if req.InvoiceDescription != "" {
		desc += " - " + req.InvoiceDescription
	}

	// Truncate on rune boundaries so a multibyte summary never yields
	// invalid UTF-8.
	if runes := []rune(desc); len(runes) > maxDescriptorLen {
		desc = string(runes[:maxDescriptorLen-3]) + "..."
	}
	return desc
}

func (c *QuoteComposer) depositAmount(req QuoteRequest) float64 {
	if req.DepositAmount > 0 {
		return req.DepositAmount
	}
	return req.TotalAmount * req.DepositPercentage / 100
}

// cleanSummary flattens a services summary into a single line: section
// markers ("## OEM Services" etc.) are dropped, bullets are stripped,
// and line breaks become ", ".
func cleanSummary(summary string) string {
	var parts []string
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "##") {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, ", ")
}
