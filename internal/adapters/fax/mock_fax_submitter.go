package fax

import (
	"advocacy-dispatch-service/internal/domain"
	"context"
	"fmt"
	"sync"
)

// MockFaxSubmitter records submissions and fails for recipients listed in
// FailFor.
type MockFaxSubmitter struct {
	mu        sync.Mutex
	FailFor   map[string]string
	Submitted []domain.DeliveryDocument
}

func (m *MockFaxSubmitter) SubmitFax(ctx context.Context, doc domain.DeliveryDocument) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if reason, ok := m.FailFor[doc.Recipient.Name]; ok {
		return "", fmt.Errorf("sinch rejected fax for %s: %s", doc.Recipient.Name, reason)
	}

	m.Submitted = append(m.Submitted, doc)
	return fmt.Sprintf("fax_mock_%d", len(m.Submitted)), nil
}

func (m *MockFaxSubmitter) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Submitted)
}
