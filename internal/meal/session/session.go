// Package session holds per-conversation state: the message history sent to
// the model and the pending meal accumulated from parsed summary lines.
package session

import (
	"sync"

	"nutrichat/internal/model"
	"nutrichat/pkg/llmprovider"
)

// Session is the unit of conversation state. History and pending items live
// together so a commit resets both atomically; a session is never left with
// a stale pending meal and a fresh history or vice versa.
//
// Methods do not lock. Callers must hold the embedded mutex for the whole
// turn so concurrent requests on one session are serialized.
type Session struct {
	sync.Mutex

	ID       string
	messages []llmprovider.Message
	pending  []model.FoodItem
}

// AppendMessage records one conversation turn.
func (s *Session) AppendMessage(role, content string) {
	s.messages = append(s.messages, llmprovider.Message{Role: role, Content: content})
}

// DropLastMessage removes the most recent message. Used to roll back a user
// turn when the model call fails, so the history never carries an utterance
// the model did not see.
func (s *Session) DropLastMessage() {
	if len(s.messages) > 0 {
		s.messages = s.messages[:len(s.messages)-1]
	}
}

// Messages returns a copy of the conversation history.
func (s *Session) Messages() []llmprovider.Message {
	out := make([]llmprovider.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// AppendPending adds parsed food items to the pending meal.
func (s *Session) AppendPending(items ...model.FoodItem) {
	s.pending = append(s.pending, items...)
}

// Pending returns a copy of the pending meal items in insertion order.
func (s *Session) Pending() []model.FoodItem {
	out := make([]model.FoodItem, len(s.pending))
	copy(out, s.pending)
	return out
}

// HasPending reports whether any items await confirmation.
func (s *Session) HasPending() bool {
	return len(s.pending) > 0
}

// Reset clears the history and the pending meal together.
func (s *Session) Reset() {
	s.messages = nil
	s.pending = nil
}
