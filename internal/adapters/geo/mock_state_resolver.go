package geo

import (
	"advocacy-dispatch-service/internal/domain"
	"advocacy-dispatch-service/internal/ports"
	"context"
	"fmt"
)

// MockStateResolver serves zip resolutions from a fixed table.
type MockStateResolver struct {
	m map[string]ports.Resolution
}

func NewMockStateResolver(entries map[string]ports.Resolution) *MockStateResolver {
	return &MockStateResolver{m: entries}
}

func (p *MockStateResolver) ResolveState(ctx context.Context, zip string) (ports.Resolution, error) {
	r, ok := p.m[zip]
	if !ok {
		return ports.Resolution{}, fmt.Errorf("zip %q: %w", zip, domain.ErrRecipientLookupFailed)
	}

	return r, nil
}
