// Manual smoke test for the Stripe client: creates one $1.00 checkout
// session against the configured key and prints the hosted URL.
//
//	STRIPE_API_KEY=sk_test_... go run ./sample/test-stripe-integration
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/bizzyglass/glass-crm/internal/infra/integration/stripe"
)

func main() {
	godotenv.Load()

	client := stripe.NewClient(
		os.Getenv("STRIPE_API_KEY"), os.Getenv("STRIPE_API_URL"),
		"http://localhost:8080/success", "http://localhost:8080/cancel",
	)

	url, err := client.CreateCheckoutSession(context.Background(), stripe.CheckoutSessionInput{
		AmountCents:    100,
		Currency:       "usd",
		Description:    "Smoke test: Service for Test Customer (Honda Civic)",
		LeadID:         0,
		Mode:           "full",
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		log.Fatalf("❌ checkout session failed: %v", err)
	}

	fmt.Println("✅ checkout session created:")
	fmt.Println(url)
}
