package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the state of one quiz session: the catalog, the current
// shopping list, the pending answer and the last message for the user.
type Session struct {
	ID        uuid.UUID     // unique session ID, used in logs
	Pool      *ItemPool     // item catalog owned by the session
	List      *ShoppingList // current shopping list
	Message   string        // message produced by the last command
	Continue  bool          // false once the user asked to quit
	StartedAt time.Time     // timestamp when the session started

	pendingAnswer *int64 // expected answer in cents, nil when no question is open
}

// NewSession creates an active session over pool and list.
// Nil arguments are replaced with empty values.
func NewSession(pool *ItemPool, list *ShoppingList) *Session {
	if pool == nil {
		pool = NewItemPool()
	}
	if list == nil {
		list = NewShoppingList()
	}
	return &Session{
		ID:        uuid.New(),
		Pool:      pool,
		List:      list,
		Continue:  true,
		StartedAt: time.Now(),
	}
}

// SetPendingAnswer opens a question whose answer is cents.
func (s *Session) SetPendingAnswer(cents int64) {
	s.pendingAnswer = &cents
}

// PendingAnswer returns the expected answer in cents and whether a question is open.
func (s *Session) PendingAnswer() (int64, bool) {
	if s.pendingAnswer == nil {
		return 0, false
	}
	return *s.pendingAnswer, true
}

// AwaitingAnswer reports whether a question is open.
func (s *Session) AwaitingAnswer() bool {
	return s.pendingAnswer != nil
}

// ClearPendingAnswer closes the open question, if any.
func (s *Session) ClearPendingAnswer() {
	s.pendingAnswer = nil
}

// TakeMessage returns the last message and clears it.
func (s *Session) TakeMessage() string {
	msg := s.Message
	s.Message = ""
	return msg
}

// Stop marks the session as finished.
func (s *Session) Stop() {
	s.Continue = false
}
