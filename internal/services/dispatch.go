package services

import (
	"advocacy-dispatch-service/internal/domain"
	"advocacy-dispatch-service/internal/ports"
	"context"
	"fmt"
	"sync"
)

// Dispatcher fans a confirmed dispatch out across recipients and channels and
// aggregates the settled outcomes. It is only ever invoked after payment is
// confirmed; the web action never reaches it.
type Dispatcher struct {
	Composer ports.BodyComposer
	Letters  ports.LetterSubmitter
	Faxes    ports.FaxSubmitter
}

func NewDispatcher(composer ports.BodyComposer, letters ports.LetterSubmitter, faxes ports.FaxSubmitter) *Dispatcher {
	return &Dispatcher{Composer: composer, Letters: letters, Faxes: faxes}
}

// Dispatch submits one document per recipient per channel in the action's
// channel set. All submissions run concurrently and are all awaited before
// the aggregate is computed; one branch's failure never suppresses or aborts
// the others. Submission failures are captured as failed outcomes carrying
// the upstream error text and are not retried.
//
// Dispatch only errors before any submission has been issued (composition
// failure or an empty channel set); after fan-out it always returns a
// FulfillmentResult, however degraded.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	requester domain.Requester,
	recipients []domain.Recipient,
	action domain.ActionSelection,
) (domain.FulfillmentResult, error) {
	channels := action.Channels()
	if len(channels) == 0 {
		return domain.FulfillmentResult{}, fmt.Errorf("dispatch: action %q has no delivery channels: %w", action, domain.ErrInvalidAction)
	}
	if len(recipients) == 0 {
		return domain.FulfillmentResult{}, fmt.Errorf("dispatch: no recipients")
	}

	// Compose once per recipient; both channels carry the same body.
	// A composition failure aborts before anything is sent: no partial
	// fan-out can exist without every document built.
	bodies := make([]string, len(recipients))
	for i, rcpt := range recipients {
		body, err := d.Composer.ComposeBody(requester, rcpt)
		if err != nil {
			return domain.FulfillmentResult{}, fmt.Errorf("dispatch: compose body for %q: %w", rcpt.Name, err)
		}
		bodies[i] = body
	}

	docs := make([]domain.DeliveryDocument, 0, len(recipients)*len(channels))
	for i, rcpt := range recipients {
		for _, ch := range channels {
			form := domain.FormPostalLetter
			if ch == domain.ChannelFaxTransmission {
				form = domain.FormFaxTransmission
			}
			docs = append(docs, domain.DeliveryDocument{
				Sender:    requester,
				Recipient: rcpt,
				Body:      bodies[i],
				Form:      form,
			})
		}
	}

	// Scatter/gather: each branch writes its own outcome slot, then a single
	// join point aggregates. No shared accumulator, no short-circuit.
	outcomes := make([]domain.DeliveryOutcome, len(docs))
	var wg sync.WaitGroup

	for i, doc := range docs {
		wg.Add(1)
		go func(slot int, doc domain.DeliveryDocument) {
			defer wg.Done()
			outcomes[slot] = d.submit(ctx, doc)
		}(i, doc)
	}

	wg.Wait()

	return domain.Aggregate(outcomes), nil
}

func (d *Dispatcher) submit(ctx context.Context, doc domain.DeliveryDocument) domain.DeliveryOutcome {
	var (
		id      string
		err     error
		channel domain.Channel
	)

	switch doc.Form {
	case domain.FormPostalLetter:
		channel = domain.ChannelPostalLetter
		id, err = d.Letters.SubmitLetter(ctx, doc)
	case domain.FormFaxTransmission:
		channel = domain.ChannelFaxTransmission
		id, err = d.Faxes.SubmitFax(ctx, doc)
	default:
		err = fmt.Errorf("unknown document form %q", doc.Form)
	}

	if err != nil {
		return domain.DeliveryOutcome{
			Channel:   channel,
			Recipient: doc.Recipient,
			Reason:    err.Error(),
		}
	}

	return domain.DeliveryOutcome{
		Channel:      channel,
		Recipient:    doc.Recipient,
		Submitted:    true,
		SubmissionID: id,
	}
}
