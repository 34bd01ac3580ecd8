package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/infra/integration/stripe"
)

// fixedClock pins ledger timestamps in tests.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// MockLeadRepository
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

// MockSMSService
type MockSMSService struct {
	mock.Mock
}

func (m *MockSMSService) Send(to, body string) error {
	args := m.Called(to, body)
	return args.Error(0)
}

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, input stripe.CheckoutSessionInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// fakeLeadRepo is an in-memory repository for the concurrency tests,
// where testify mocks would get in the way.
type fakeLeadRepo struct {
	mu    sync.Mutex
	leads map[int]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[int]*entity.Lead)}
}

func (f *fakeLeadRepo) put(lead *entity.Lead) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leads[lead.ID] = copyLead(lead)
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	lead.ID = len(f.leads) + 1
	lead.CreatedAt = time.Now()
	f.leads[lead.ID] = copyLead(lead)
	return nil
}

func (f *fakeLeadRepo) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lead, ok := f.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	return copyLead(lead), nil
}

func (f *fakeLeadRepo) FindAll(ctx context.Context) ([]entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Lead{}
	for _, lead := range f.leads {
		out = append(out, *copyLead(lead))
	}
	return out, nil
}

func (f *fakeLeadRepo) FindByPhoneSuffix(ctx context.Context, suffix string) ([]entity.Lead, error) {
	return nil, nil
}

func (f *fakeLeadRepo) Save(ctx context.Context, lead *entity.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.leads[lead.ID]; !ok {
		return entity.ErrLeadNotFound
	}
	f.leads[lead.ID] = copyLead(lead)
	return nil
}

func (f *fakeLeadRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	lead, ok := f.leads[id]
	if !ok {
		return entity.ErrLeadNotFound
	}
	lead.Status = status
	return nil
}

func (f *fakeLeadRepo) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.leads, id)
	return nil
}

func copyLead(lead *entity.Lead) *entity.Lead {
	clone := *lead
	clone.Messages = append([]entity.Message{}, lead.Messages...)
	return &clone
}

// noopSMS counts sends without a carrier.
type noopSMS struct {
	mu    sync.Mutex
	sends []string
}

func (n *noopSMS) Send(to, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sends = append(n.sends, to)
	return nil
}
