package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy for the fulfillment pipeline. Handlers map these onto HTTP
// status codes; everything else surfaces as an internal error.
var (
	// ErrRecipientLookupFailed: the zip did not resolve or the directory has
	// no entry for the resolved state. Recoverable; the user may correct it.
	ErrRecipientLookupFailed = errors.New("recipient lookup failed")

	// ErrInvalidAction: a price was requested for an unpriceable action.
	// A well-formed client never triggers this; treat occurrences as defects.
	ErrInvalidAction = errors.New("invalid action")

	// ErrUpstreamUnavailable: the payment provider or a vendor API was
	// unreachable or rejected the request. Recoverable; the user may retry.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrDispatchUnreachable: the dispatch layer could not be invoked after a
	// payment was captured. Fatal to the automatic flow; money has moved but
	// nothing was confirmed sent, so the case needs manual reconciliation.
	ErrDispatchUnreachable = errors.New("dispatch unreachable")

	// ErrInvalidTransition: an event arrived in a session state that does not
	// accept it (e.g. reporting payment before checkout).
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrSessionNotFound: no live session for the given id.
	ErrSessionNotFound = errors.New("session not found")
)

// ValidationError reports malformed requester input. No external call is made
// while one is outstanding.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid requester fields: %s", strings.Join(e.Fields, ", "))
}
