package post

import (
	"advocacy-dispatch-service/internal/domain"
	"context"
	"fmt"
	"sync"
)

// MockLetterSubmitter records submissions and fails for recipients listed in
// FailFor.
type MockLetterSubmitter struct {
	mu        sync.Mutex
	FailFor   map[string]string
	Submitted []domain.DeliveryDocument
}

func (m *MockLetterSubmitter) SubmitLetter(ctx context.Context, doc domain.DeliveryDocument) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if reason, ok := m.FailFor[doc.Recipient.Name]; ok {
		return "", fmt.Errorf("lob rejected letter for %s: %s", doc.Recipient.Name, reason)
	}

	m.Submitted = append(m.Submitted, doc)
	return fmt.Sprintf("ltr_mock_%d", len(m.Submitted)), nil
}

func (m *MockLetterSubmitter) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Submitted)
}
