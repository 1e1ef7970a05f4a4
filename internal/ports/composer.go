package ports

import "advocacy-dispatch-service/internal/domain"

// Contract for composing the message body sent to one recipient on behalf of
// one requester. Composition is pure text generation with no side effects.
type BodyComposer interface {
	ComposeBody(sender domain.Requester, recipient domain.Recipient) (string, error)
}
