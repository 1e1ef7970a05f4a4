package domain

// Charge is the amount owed for a priced action. It is derived from the
// action's unit price and the recipient count alone; recomputing from the
// same inputs always yields the same amount.
type Charge struct {
	AmountCents    int64
	UnitPriceCents int64
	Currency       string
	RecipientCount int
}

// PaymentStatus is the terminal (or not yet terminal) state of one
// authorization attempt.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentAuthorization is one checkout attempt at the payment provider.
// It is created with status pending and moves to exactly one terminal status
// as reported by the client-side confirmation step. A new attempt after a
// failure creates a new authorization; an old one is never reused.
type PaymentAuthorization struct {
	// Reference is the provider-side identifier (e.g. a payment intent id).
	Reference string
	// ClientSecret is handed to the client so it can drive the provider's
	// confirmation UI. It is never logged.
	ClientSecret string
	Status       PaymentStatus
}
