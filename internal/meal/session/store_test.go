package session

import (
	"testing"
	"time"

	"nutrichat/internal/model"
)

func TestStoreGetOrCreate(t *testing.T) {
	t.Run("EmptyIDGeneratesUniqueSessions", func(t *testing.T) {
		st := NewStore(16, time.Minute)
		a := st.GetOrCreate("")
		b := st.GetOrCreate("")
		if a.ID == "" || b.ID == "" {
			t.Fatal("expected generated session IDs")
		}
		if a.ID == b.ID {
			t.Errorf("expected distinct IDs, both got %q", a.ID)
		}
		if st.Len() != 2 {
			t.Errorf("expected 2 sessions, got %d", st.Len())
		}
	})

	t.Run("SameIDReturnsSameSession", func(t *testing.T) {
		st := NewStore(16, time.Minute)
		a := st.GetOrCreate("sess-1")
		a.AppendPending(model.FoodItem{Food: "Eggs (2 large)", Protein: 12, Fat: 10, Calories: 140})
		b := st.GetOrCreate("sess-1")
		if a != b {
			t.Fatal("expected the same session instance")
		}
		if !b.HasPending() {
			t.Error("expected pending items to survive lookup")
		}
	})

	t.Run("CapacityEvictsOldest", func(t *testing.T) {
		st := NewStore(2, time.Minute)
		st.GetOrCreate("a")
		st.GetOrCreate("b")
		st.GetOrCreate("c")
		if st.Len() != 2 {
			t.Errorf("expected store capped at 2, got %d", st.Len())
		}
	})
}

func TestSessionResetClearsHistoryAndPending(t *testing.T) {
	s := &Session{ID: "sess-1"}
	s.AppendMessage("user", "2 eggs and toast")
	s.AppendMessage("assistant", "What size were the eggs?")
	s.AppendPending(model.FoodItem{Food: "Eggs (2 large)", Protein: 12, Fat: 10, Calories: 140})

	s.Reset()

	if len(s.Messages()) != 0 {
		t.Errorf("expected empty history, got %d messages", len(s.Messages()))
	}
	if s.HasPending() {
		t.Errorf("expected empty pending meal, got %+v", s.Pending())
	}
}

func TestSessionDropLastMessage(t *testing.T) {
	s := &Session{ID: "sess-1"}
	s.AppendMessage("user", "2 eggs")
	s.AppendMessage("assistant", "What size?")
	s.AppendMessage("user", "large")

	s.DropLastMessage()

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[len(msgs)-1].Role != "assistant" {
		t.Errorf("expected assistant message last, got %q", msgs[len(msgs)-1].Role)
	}

	s.DropLastMessage()
	s.DropLastMessage()
	s.DropLastMessage() // no-op on empty history
	if len(s.Messages()) != 0 {
		t.Errorf("expected empty history, got %d", len(s.Messages()))
	}
}
