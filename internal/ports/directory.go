package ports

import (
	"advocacy-dispatch-service/internal/domain"
	"context"
)

// Port: a boundary for looking up the recipients for a state.
// The directory is read-only reference data; every US state maps to exactly
// its two sitting senators.
type RecipientDirectory interface {
	// Lookup returns the ordered recipient list for a state abbreviation.
	Lookup(ctx context.Context, stateAbbrev string) ([]domain.Recipient, error)
}
