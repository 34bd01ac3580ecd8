package stripe

// CheckoutSessionInput is what the orchestrator hands us for one
// payable link. AmountCents is already in minor units.
type CheckoutSessionInput struct {
	AmountCents    int64
	Currency       string
	Description    string
	LeadID         int
	Mode           string // "full" or "deposit", carried in metadata
	IdempotencyKey string
}

type checkoutSessionResponse struct {
	ID    string    `json:"id"`
	URL   string    `json:"url"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
