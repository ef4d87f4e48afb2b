package conversation

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps all conversations in process memory. It is the default
// backend; nothing survives a restart. Stored values are never mutated in
// place: ApplyTurn swaps in a fresh copy, so readers always see a complete
// snapshot.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]*Conversation
	locks KeyedMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]*Conversation)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Conversation{}, fmt.Errorf("conversation id is required")
	}
	s.mu.RLock()
	conv, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return Conversation{}, ErrNotFound
	}
	return copyConversation(conv), nil
}

func (s *MemoryStore) List(_ context.Context) ([]Summary, error) {
	s.mu.RLock()
	out := make([]Summary, 0, len(s.data))
	for _, conv := range s.data {
		out = append(out, Summary{
			ID:           conv.ID,
			CreatedAt:    conv.CreatedAt,
			UpdatedAt:    conv.UpdatedAt,
			MessageCount: len(conv.Messages),
		})
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) ApplyTurn(_ context.Context, id string, turn Turn) (Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Conversation{}, fmt.Errorf("conversation id is required")
	}

	// Per-conversation lock keeps same-id turns serialized without stalling
	// turns on other conversations; the map lock below only guards the swap.
	unlock := s.locks.Lock(id)
	defer unlock()

	now := time.Now().UTC()

	s.mu.RLock()
	prev, ok := s.data[id]
	s.mu.RUnlock()

	var next Conversation
	if ok {
		next = copyConversation(prev)
	} else {
		next = Conversation{ID: id, CreatedAt: now}
	}
	next.Messages = append(next.Messages, turn.UserMessage, turn.AssistantMessage)
	next.Preferences = turn.Preferences
	next.UpdatedAt = now

	s.mu.Lock()
	s.data[id] = &next
	s.mu.Unlock()
	return copyConversation(&next), nil
}

func copyConversation(conv *Conversation) Conversation {
	out := *conv
	out.Messages = append([]Message(nil), conv.Messages...)
	return out
}
