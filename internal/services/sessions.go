package services

import (
	"advocacy-dispatch-service/internal/domain"
	"sync"

	"github.com/google/uuid"
)

// Session is one requester's fulfillment attempt. Sessions are per-requester
// and never shared, so a single mutex per session is the only locking needed;
// the orchestrator holds it across each state transition.
type Session struct {
	mu sync.Mutex

	ID         string
	State      SessionState
	Requester  domain.Requester
	StateName  string
	Recipients []domain.Recipient

	// Set while a paid checkout is active. A fresh checkout attempt replaces
	// both; an old authorization is never reused or mutated into a new one.
	Charge        *domain.Charge
	Authorization *domain.PaymentAuthorization
	Action        domain.ActionSelection

	// Reference of the authorization that has already been dispatched,
	// guaranteeing at most one dispatch per confirmed payment.
	dispatchedRef string

	Result *domain.FulfillmentResult
}

// SessionStore is an in-memory registry of live sessions. Sessions only live
// for the duration of a fulfillment flow; nothing is persisted.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

func (s *SessionStore) Create(requester domain.Requester) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		State:     StateIntake,
		Requester: requester,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
