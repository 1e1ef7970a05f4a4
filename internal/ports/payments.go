package ports

import (
	"advocacy-dispatch-service/internal/domain"
	"context"
)

// IntentMetadata is attached to a payment authorization so the provider-side
// record says what the requester was buying.
type IntentMetadata struct {
	Action         domain.ActionSelection
	RecipientCount int
	SessionID      string
}

// Contract for creating payment authorizations at the card-payment provider.
//
// The returned authorization is advisory: no money moves until the client
// completes the provider's confirmation step and reports the terminal status
// back. Implementations return an error wrapping ErrUpstreamUnavailable when
// the provider is unreachable or rejects the charge.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, charge domain.Charge, meta IntentMetadata) (domain.PaymentAuthorization, error)
}
