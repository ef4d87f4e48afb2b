package conversation

import (
	"context"
	"errors"
	"sync"

	"tripmate/internal/trip"
)

// ErrNotFound is returned when a conversation id is unknown to the store.
var ErrNotFound = errors.New("conversation not found")

// Turn is the atomic unit of conversation mutation: the user's message, the
// assistant's reply, and the preference model that results from merging the
// message's extracted preferences into the stored ones. Either the whole
// turn commits or none of it does.
type Turn struct {
	UserMessage      Message
	AssistantMessage Message
	Preferences      trip.Preferences
}

// Store is the conversation repository. Implementations must keep turn
// application atomic per conversation and must not let conversations on
// different ids block one another.
type Store interface {
	// Get returns a copy of the conversation, or ErrNotFound.
	Get(ctx context.Context, id string) (Conversation, error)
	// List returns summaries of all conversations.
	List(ctx context.Context) ([]Summary, error)
	// ApplyTurn appends both turn messages and replaces the stored
	// preference model, creating the conversation if the id is new. The
	// updated conversation is returned.
	ApplyTurn(ctx context.Context, id string, turn Turn) (Conversation, error)
}

// KeyedMutex serializes work per conversation id while leaving distinct ids
// free to proceed concurrently. Entries are never evicted; conversations
// live for the process lifetime anyway.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Lock acquires the mutex for id and returns its unlock func.
func (k *KeyedMutex) Lock(id string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[id]
	if !ok {
		l = &sync.Mutex{}
		k.locks[id] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
