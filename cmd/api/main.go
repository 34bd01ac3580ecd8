package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bizzyglass/glass-crm/internal/infra/database"
	"github.com/bizzyglass/glass-crm/internal/infra/http/handlers"
	"github.com/bizzyglass/glass-crm/internal/infra/http/middleware"
	"github.com/bizzyglass/glass-crm/internal/infra/integration/stripe"
	"github.com/bizzyglass/glass-crm/internal/infra/integration/twilio"
	"github.com/bizzyglass/glass-crm/internal/infra/mail"
	"github.com/bizzyglass/glass-crm/internal/infra/queue"
	"github.com/bizzyglass/glass-crm/internal/infra/sms"
	"github.com/bizzyglass/glass-crm/internal/infra/worker"
	"github.com/bizzyglass/glass-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	serviceRepo := database.NewServiceRepository(db)

	// 2. Gateways and adapters
	gateway := stripe.NewClient(
		os.Getenv("STRIPE_API_KEY"), os.Getenv("STRIPE_API_URL"),
		os.Getenv("STRIPE_SUCCESS_URL"), os.Getenv("STRIPE_CANCEL_URL"),
	)
	smsNotifier := sms.NewNotifier(twilio.NewClient())
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// 3. Conversation core
	locks := usecase.NewLeadLocks()
	ledger := usecase.NewMessageLedger(usecase.NewSystemClock())
	composer := usecase.NewQuoteComposer()
	router := usecase.NewInboundRouter(leadRepo)
	orchestrator := usecase.NewPaymentLinkOrchestrator(gateway, composer)

	conversationSvc := usecase.NewLeadConversationService(
		leadRepo, ledger, router, orchestrator, composer,
		smsNotifier, mailSender, locks,
		os.Getenv("BUSINESS_NAME"), os.Getenv("OWNER_NOTIFY_EMAIL"),
	)

	// 4. Workers
	applyPaymentUC := usecase.NewApplyPaymentUseCase(
		leadRepo, ledger, locks, mailSender, os.Getenv("OWNER_NOTIFY_EMAIL"),
	)
	paymentWorker := queue.NewWorker(rabbitMQ.Ch, applyPaymentUC)
	go paymentWorker.Start(queue.QueueName)

	followUpWorker := worker.NewQuoteFollowUpWorker(leadRepo, conversationSvc)
	go followUpWorker.Start(context.Background())

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(conversationSvc, leadRepo)
	quoteHandler := handlers.NewQuoteHandler(conversationSvc)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	smsWebhookHandler := handlers.NewSMSWebhookHandler(conversationSvc)
	paymentWebhookHandler := handlers.NewWebhookHandler(producer)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Post("/api/leads", leadHandler.HandleCreate)
	r.Get("/api/leads", leadHandler.HandleList)
	r.Get("/api/leads/{leadId}", leadHandler.HandleGet)
	r.Patch("/api/leads/{leadId}/status", leadHandler.HandleUpdateStatus)
	r.Post("/api/leads/{leadId}/messages", leadHandler.HandleAppendMessage)
	r.Post("/api/leads/{leadId}/quote", quoteHandler.HandleSend)
	r.Post("/api/quotes/generate", quoteHandler.HandleGenerate)
	r.Get("/api/services", serviceHandler.HandleList)
	r.Post("/webhooks/sms", smsWebhookHandler.Handle)
	r.Post("/webhooks/payments", paymentWebhookHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 glass-crm API listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
