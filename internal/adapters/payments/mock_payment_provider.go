package payments

import (
	"advocacy-dispatch-service/internal/domain"
	"advocacy-dispatch-service/internal/ports"
	"context"
	"fmt"
	"sync"
)

// MockPaymentProvider counts intent creations and can be forced to fail.
type MockPaymentProvider struct {
	mu      sync.Mutex
	Fail    bool
	Created []domain.Charge
}

func (m *MockPaymentProvider) CreateIntent(ctx context.Context, charge domain.Charge, meta ports.IntentMetadata) (domain.PaymentAuthorization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Fail {
		return domain.PaymentAuthorization{}, fmt.Errorf("mock provider down: %w", domain.ErrUpstreamUnavailable)
	}

	m.Created = append(m.Created, charge)
	n := len(m.Created)
	return domain.PaymentAuthorization{
		Reference:    fmt.Sprintf("pi_mock_%d", n),
		ClientSecret: fmt.Sprintf("pi_mock_%d_secret", n),
		Status:       domain.PaymentPending,
	}, nil
}

func (m *MockPaymentProvider) IntentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Created)
}
