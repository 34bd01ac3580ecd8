package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/infra/queue"
	"github.com/bizzyglass/glass-crm/internal/usecase"
)

type MockConversationService struct {
	mock.Mock
}

func (m *MockConversationService) CreateLead(ctx context.Context, input usecase.CreateLeadInput) (*entity.Lead, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockConversationService) AppendOwnerMessage(ctx context.Context, leadID int, body string) (*entity.Lead, error) {
	args := m.Called(ctx, leadID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockConversationService) AppendInboundMessage(ctx context.Context, rawSenderNumber, body string) (*usecase.InboundOutcome, error) {
	args := m.Called(ctx, rawSenderNumber, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.InboundOutcome), args.Error(1)
}

func (m *MockConversationService) GenerateQuote(ctx context.Context, req usecase.QuoteRequest) (*usecase.GenerateQuoteOutput, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.GenerateQuoteOutput), args.Error(1)
}

func (m *MockConversationService) SendFinalQuote(ctx context.Context, leadID int, messageContent string) (*entity.Lead, error) {
	args := m.Called(ctx, leadID, messageContent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishPaymentEvent(ctx context.Context, payload queue.PaymentEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByPhoneSuffix(ctx context.Context, suffix string) ([]entity.Lead, error) {
	args := m.Called(ctx, suffix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Save(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
