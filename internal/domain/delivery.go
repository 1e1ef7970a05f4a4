package domain

// DocumentForm is the rendered shape of a delivery document.
type DocumentForm string

const (
	FormPostalLetter    DocumentForm = "postal_letter"
	FormFaxTransmission DocumentForm = "fax_transmission"
)

// DeliveryDocument is one composed message bound for one recipient over one
// channel. A dispatch over N recipients and M channels builds N*M documents.
type DeliveryDocument struct {
	Sender    Requester
	Recipient Recipient
	Body      string
	Form      DocumentForm
}

// DeliveryOutcome records how a single submission settled. Exactly one of
// SubmissionID and Reason is set. Failed submissions are never retried.
type DeliveryOutcome struct {
	Channel      Channel
	Recipient    Recipient
	Submitted    bool
	SubmissionID string
	Reason       string
}

// OverallStatus classifies a FulfillmentResult across all its outcomes.
type OverallStatus string

const (
	AllSucceeded    OverallStatus = "all_succeeded"
	PartiallyFailed OverallStatus = "partially_failed"
	AllFailed       OverallStatus = "all_failed"
)

// FulfillmentResult aggregates every outcome of one dispatch. It is computed
// once, after all submissions have settled.
type FulfillmentResult struct {
	Overall  OverallStatus
	Outcomes []DeliveryOutcome
}

// Aggregate computes the overall status for a settled outcome set.
// Callers must not pass an empty slice; the dispatcher always produces at
// least one outcome per dispatch.
func Aggregate(outcomes []DeliveryOutcome) FulfillmentResult {
	succeeded := 0
	for _, o := range outcomes {
		if o.Submitted {
			succeeded++
		}
	}

	overall := PartiallyFailed
	switch succeeded {
	case len(outcomes):
		overall = AllSucceeded
	case 0:
		overall = AllFailed
	}

	return FulfillmentResult{Overall: overall, Outcomes: outcomes}
}
