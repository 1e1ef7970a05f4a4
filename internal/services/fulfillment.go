package services

import (
	"advocacy-dispatch-service/internal/domain"
	"advocacy-dispatch-service/internal/ports"
	"context"
	"fmt"
	"log"
)

// SessionState is a node in the fulfillment state machine.
type SessionState string

const (
	StateIntake             SessionState = "intake"
	StateRecipientsResolved SessionState = "recipients_resolved"
	StateChannelSelected    SessionState = "channel_selected"
	StateWebTerminal        SessionState = "web_terminal"
	StateAwaitingPayment    SessionState = "awaiting_payment"
	StatePaymentConfirmed   SessionState = "payment_confirmed"
	StateDispatched         SessionState = "dispatched"
	StateDone               SessionState = "done"
	StateError              SessionState = "error"
)

// Event is an input to the fulfillment state machine.
type Event string

const (
	EventResolved         Event = "resolved"
	EventSelectWeb        Event = "select_web"
	EventSelectPaid       Event = "select_paid"
	EventAuthorized       Event = "authorized"
	EventAuthorizeFailed  Event = "authorize_failed"
	EventPaymentConfirmed Event = "payment_confirmed"
	EventPaymentFailed    Event = "payment_failed"
	EventDispatchSettled  Event = "dispatch_settled"
	EventDispatchLost     Event = "dispatch_lost"
	EventFinished         Event = "finished"
	EventReselect         Event = "reselect"
)

// transitions is the full state machine. Rendering concerns live elsewhere;
// this table is the single source of truth for which step may follow which.
var transitions = map[SessionState]map[Event]SessionState{
	StateIntake: {
		EventResolved: StateRecipientsResolved,
	},
	StateRecipientsResolved: {
		EventSelectWeb:  StateWebTerminal,
		EventSelectPaid: StateChannelSelected,
	},
	StateChannelSelected: {
		EventSelectWeb:       StateWebTerminal,
		EventSelectPaid:      StateChannelSelected,
		EventAuthorized:      StateAwaitingPayment,
		EventAuthorizeFailed: StateChannelSelected,
	},
	StateAwaitingPayment: {
		EventPaymentConfirmed: StatePaymentConfirmed,
		EventPaymentFailed:    StateChannelSelected,
	},
	StatePaymentConfirmed: {
		EventDispatchSettled: StateDispatched,
		EventDispatchLost:    StateError,
	},
	StateDispatched: {
		EventFinished: StateDone,
	},
	StateWebTerminal: {
		EventFinished: StateDone,
	},
	// Re-entry: a finished requester may pick another channel against the
	// same resolved recipients without repeating resolution.
	StateDone: {
		EventReselect: StateChannelSelected,
	},
}

// Transition is the pure state-transition function. It has no side effects;
// the orchestrator invokes handlers only after a transition is accepted.
func Transition(state SessionState, ev Event) (SessionState, error) {
	next, ok := transitions[state][ev]
	if !ok {
		return state, fmt.Errorf("event %q in state %q: %w", ev, state, domain.ErrInvalidTransition)
	}
	return next, nil
}

// WebMessage is one composed body plus the contact metadata a requester needs
// to deliver it manually through a senator's web form.
type WebMessage struct {
	Recipient domain.Recipient
	Body      string
}

// CheckoutResult is what selecting a channel produces: a web package for the
// free path, or a charge plus pending authorization for the paid path.
type CheckoutResult struct {
	State         SessionState
	Web           []WebMessage
	Charge        *domain.Charge
	Authorization *domain.PaymentAuthorization
}

// PaymentResult reports how a terminal payment status moved the session.
// Fulfillment is set only when a confirmed payment led to a dispatch.
type PaymentResult struct {
	State       SessionState
	Fulfillment *domain.FulfillmentResult
}

// Orchestrator drives a session through intake, recipient resolution, channel
// selection, payment and dispatch. It owns all transition side effects.
type Orchestrator struct {
	resolver   ports.StateResolver
	directory  ports.RecipientDirectory
	composer   ports.BodyComposer
	pricer     *Pricer
	payments   ports.PaymentProvider
	dispatcher *Dispatcher
	store      *SessionStore
}

func NewOrchestrator(
	resolver ports.StateResolver,
	directory ports.RecipientDirectory,
	composer ports.BodyComposer,
	pricer *Pricer,
	payments ports.PaymentProvider,
	dispatcher *Dispatcher,
	store *SessionStore,
) *Orchestrator {
	return &Orchestrator{
		resolver:   resolver,
		directory:  directory,
		composer:   composer,
		pricer:     pricer,
		payments:   payments,
		dispatcher: dispatcher,
		store:      store,
	}
}

func (o *Orchestrator) Store() *SessionStore {
	return o.store
}

// Begin validates requester input, resolves the zip to a state, looks up the
// state's recipients and opens a session. No charge exists at this point.
func (o *Orchestrator) Begin(ctx context.Context, requester domain.Requester) (*Session, error) {
	if err := requester.Validate(); err != nil {
		return nil, fmt.Errorf("begin session: %w", err)
	}

	res, err := o.resolver.ResolveState(ctx, requester.ZipCode)
	if err != nil {
		return nil, fmt.Errorf("begin session: resolve zip %q: %w", requester.ZipCode, err)
	}

	recipients, err := o.directory.Lookup(ctx, res.StateAbbrev)
	if err != nil {
		return nil, fmt.Errorf("begin session: directory lookup for %q: %w", res.StateAbbrev, err)
	}

	// City and state on the return address come from the resolver, not the
	// form, so the letter's from-address matches the zip that was verified.
	requester.City = res.City
	requester.State = res.StateAbbrev

	sess := o.store.Create(requester)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	next, err := Transition(sess.State, EventResolved)
	if err != nil {
		return nil, err
	}
	sess.State = next
	sess.StateName = res.StateName
	sess.Recipients = recipients

	return sess, nil
}

// Checkout applies a channel selection to the session. The web action is
// terminal: it composes the bodies and finishes without any charge or
// authorization. Paid actions price the charge and create a fresh payment
// authorization; pricing or provider failures leave the session in
// channel_selected so the requester can retry or pick differently.
func (o *Orchestrator) Checkout(ctx context.Context, sessionID string, action domain.ActionSelection) (CheckoutResult, error) {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return CheckoutResult{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// A finished session re-enters channel selection with its already
	// resolved recipients.
	if sess.State == StateDone {
		next, err := Transition(sess.State, EventReselect)
		if err != nil {
			return CheckoutResult{}, err
		}
		sess.State = next
	}

	if action == domain.ActionWeb {
		return o.checkoutWeb(sess)
	}
	return o.checkoutPaid(ctx, sess, action)
}

func (o *Orchestrator) checkoutWeb(sess *Session) (CheckoutResult, error) {
	next, err := Transition(sess.State, EventSelectWeb)
	if err != nil {
		return CheckoutResult{}, err
	}

	messages := make([]WebMessage, 0, len(sess.Recipients))
	for _, rcpt := range sess.Recipients {
		body, err := o.composer.ComposeBody(sess.Requester, rcpt)
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("checkout web: compose body for %q: %w", rcpt.Name, err)
		}
		messages = append(messages, WebMessage{Recipient: rcpt, Body: body})
	}

	sess.State = next
	sess.Action = domain.ActionWeb

	done, err := Transition(sess.State, EventFinished)
	if err != nil {
		return CheckoutResult{}, err
	}
	sess.State = done

	return CheckoutResult{State: sess.State, Web: messages}, nil
}

func (o *Orchestrator) checkoutPaid(ctx context.Context, sess *Session, action domain.ActionSelection) (CheckoutResult, error) {
	selected, err := Transition(sess.State, EventSelectPaid)
	if err != nil {
		return CheckoutResult{}, err
	}
	sess.State = selected

	charge, err := o.pricer.Price(action, len(sess.Recipients))
	if err != nil {
		// Pricing misuse is a client or orchestrator defect, not user error.
		log.Printf("defect: pricing rejected action=%q recipients=%d err=%v", action, len(sess.Recipients), err)
		return CheckoutResult{}, fmt.Errorf("checkout: %w", err)
	}

	auth, err := o.payments.CreateIntent(ctx, charge, ports.IntentMetadata{
		Action:         action,
		RecipientCount: charge.RecipientCount,
		SessionID:      sess.ID,
	})
	if err != nil {
		// Session stays in channel_selected; the requester may retry.
		return CheckoutResult{}, fmt.Errorf("checkout: authorize charge: %w", err)
	}

	next, err := Transition(sess.State, EventAuthorized)
	if err != nil {
		return CheckoutResult{}, err
	}

	// A fresh attempt replaces charge and authorization wholesale so a stale
	// amount can never be captured.
	sess.State = next
	sess.Action = action
	sess.Charge = &charge
	sess.Authorization = &auth

	return CheckoutResult{State: sess.State, Charge: &charge, Authorization: &auth}, nil
}

// ReportPayment applies the client-reported terminal payment status.
//
// A failed status returns the session to channel selection without any
// dispatch. A confirmed status triggers exactly one dispatch for the current
// authorization; the fulfillment result is terminal even when degraded
// (partial or total delivery failure is reported as data, not as an error).
func (o *Orchestrator) ReportPayment(ctx context.Context, sessionID string, confirmed bool) (PaymentResult, error) {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return PaymentResult{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !confirmed {
		next, err := Transition(sess.State, EventPaymentFailed)
		if err != nil {
			return PaymentResult{}, err
		}
		if sess.Authorization != nil {
			sess.Authorization.Status = domain.PaymentFailed
		}
		sess.State = next
		return PaymentResult{State: sess.State}, nil
	}

	next, err := Transition(sess.State, EventPaymentConfirmed)
	if err != nil {
		return PaymentResult{}, err
	}

	auth := sess.Authorization
	if auth == nil || sess.Charge == nil {
		return PaymentResult{}, fmt.Errorf("report payment: %w", domain.ErrInvalidTransition)
	}
	if sess.dispatchedRef == auth.Reference {
		return PaymentResult{}, fmt.Errorf("report payment: authorization %s already dispatched: %w", auth.Reference, domain.ErrInvalidTransition)
	}

	auth.Status = domain.PaymentConfirmed
	sess.State = next
	sess.dispatchedRef = auth.Reference

	// Money has moved; the submissions must not die with the client request.
	result, err := o.dispatcher.Dispatch(context.WithoutCancel(ctx), sess.Requester, sess.Recipients, sess.Action)
	if err != nil {
		// Captured payment with no confirmed dispatch: park the session and
		// flag for manual reconciliation. No automatic retry.
		sess.State, _ = Transition(sess.State, EventDispatchLost)
		log.Printf("reconciliation_required=true session=%s payment_ref=%s err=%v", sess.ID, auth.Reference, err)
		return PaymentResult{State: sess.State}, fmt.Errorf("report payment: %w: %v", domain.ErrDispatchUnreachable, err)
	}

	dispatched, err := Transition(sess.State, EventDispatchSettled)
	if err != nil {
		return PaymentResult{}, err
	}
	sess.State = dispatched
	sess.Result = &result

	done, err := Transition(sess.State, EventFinished)
	if err != nil {
		return PaymentResult{}, err
	}
	sess.State = done

	return PaymentResult{State: sess.State, Fulfillment: &result}, nil
}
