package ports

import (
	"advocacy-dispatch-service/internal/domain"
	"context"
)

// Contract for submitting a rendered postal letter to the mail vendor.
//
// Submission is opaque, non-reversible and non-transactional: once the vendor
// accepts the document there is no cancel path, and a failure must not be
// retried automatically. The returned id is the vendor's submission id.
type LetterSubmitter interface {
	SubmitLetter(ctx context.Context, doc domain.DeliveryDocument) (string, error)
}

// Contract for submitting a document to the fax vendor. Same submission
// semantics as LetterSubmitter; the destination is the recipient's E.164 fax
// number carried on the document.
type FaxSubmitter interface {
	SubmitFax(ctx context.Context, doc domain.DeliveryDocument) (string, error)
}
