package dto

type CheckoutRequest struct {
	Action string `json:"action"`
}

type WebMessageResponse struct {
	Recipient RecipientResponse `json:"recipient"`
	Body      string            `json:"body"`
}

type ChargeResponse struct {
	AmountCents    int64  `json:"amount_cents"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Currency       string `json:"currency"`
	RecipientCount int    `json:"recipient_count"`
}

type PaymentIntentResponse struct {
	Reference    string `json:"reference"`
	ClientSecret string `json:"client_secret"`
}

// CheckoutResponse carries either the web package (Messages) or the paid
// package (Charge + Payment), depending on the selected action.
type CheckoutResponse struct {
	Status   string                 `json:"status"`
	Messages []WebMessageResponse   `json:"messages,omitempty"`
	Charge   *ChargeResponse        `json:"charge,omitempty"`
	Payment  *PaymentIntentResponse `json:"payment,omitempty"`
}
