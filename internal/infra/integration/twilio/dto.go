package twilio

type SendMessageInput struct {
	To   string // E.164
	Body string
}

type messageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    int    `json:"code"`
	ErrorMessage string `json:"message"`
}

// InboundMessage is the form payload the carrier posts to our webhook.
type InboundMessage struct {
	From string
	Body string
}
