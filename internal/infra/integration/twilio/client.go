package twilio

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

type Client struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	http       *http.Client
}

func NewClient() *Client {
	return &Client{
		accountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		authToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		fromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		baseURL:    "https://api.twilio.com/2010-04-01",
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SendMessage(input SendMessageInput) error {
	if c.accountSID == "" || c.authToken == "" || c.fromNumber == "" {
		log.Println("⚠️ Twilio: ACCOUNT_SID, AUTH_TOKEN or FROM_NUMBER not configured")
		return fmt.Errorf("twilio not configured")
	}

	form := url.Values{}
	form.Set("To", input.To)
	form.Set("From", c.fromNumber)
	form.Set("Body", input.Body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var result messageResponse
		if json.Unmarshal(respBody, &result) == nil && result.ErrorMessage != "" {
			return fmt.Errorf("twilio: %s (code %d)", result.ErrorMessage, result.ErrorCode)
		}
		return fmt.Errorf("twilio api error: %d", resp.StatusCode)
	}

	log.Printf("✅ Twilio: message sent to %s", input.To)
	return nil
}

// ParseInbound reads the carrier's form-encoded webhook body.
func ParseInbound(r *http.Request) (InboundMessage, error) {
	if err := r.ParseForm(); err != nil {
		return InboundMessage{}, fmt.Errorf("invalid webhook form: %w", err)
	}
	return InboundMessage{
		From: r.PostFormValue("From"),
		Body: r.PostFormValue("Body"),
	}, nil
}
