package ports

import "context"

// Resolution is the location a postal code maps to.
type Resolution struct {
	StateAbbrev string
	StateName   string
	City        string
}

// Contract for resolving a 5-digit US postal code to its state.
// Implementations return an error wrapping ErrRecipientLookupFailed when the
// zip does not exist.
type StateResolver interface {
	// Resolve a postal code to state abbreviation, state name and city.
	ResolveState(ctx context.Context, zip string) (Resolution, error)
}
