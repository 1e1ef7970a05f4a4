package dto

type PaymentReportRequest struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type OutcomeResponse struct {
	Recipient RecipientResponse `json:"recipient"`
	Channel   string            `json:"channel"`
	Status    string            `json:"status"`
	ID        string            `json:"id,omitempty"`
	Reason    string            `json:"reason,omitempty"`
}

type FulfillmentResponse struct {
	Status        string            `json:"status"`
	OverallStatus string            `json:"overall_status,omitempty"`
	Outcomes      []OutcomeResponse `json:"outcomes,omitempty"`
}
