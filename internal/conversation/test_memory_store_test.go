package conversation

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"tripmate/internal/tester"
	"tripmate/internal/trip"
)

func turn(n int) Turn {
	return Turn{
		UserMessage:      NewMessage(RoleUser, fmt.Sprintf("user %d", n)),
		AssistantMessage: NewMessage(RoleAssistant, fmt.Sprintf("assistant %d", n)),
	}
}

func TestGetUnknownID(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	tester.Err(t, err, ErrNotFound)
}

func TestApplyTurnCreatesOnFirstReference(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	conv, err := s.ApplyTurn(ctx, "c1", turn(0))
	tester.NoErr(t, err)
	tester.Eq(t, conv.ID, "c1")
	tester.Len(t, conv.Messages, 2, "user + assistant after one turn")
	tester.False(t, conv.CreatedAt.IsZero())
	tester.Eq(t, conv.Messages[0].Role, RoleUser)
	tester.Eq(t, conv.Messages[1].Role, RoleAssistant)

	got, err := s.Get(ctx, "c1")
	tester.NoErr(t, err)
	tester.Len(t, got.Messages, 2)
}

func TestApplyTurnReplacesPreferences(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	budget := "low"
	first := turn(0)
	first.Preferences = trip.Preferences{Budget: &budget}
	_, err := s.ApplyTurn(ctx, "c1", first)
	tester.NoErr(t, err)

	dest := "Bali"
	second := turn(1)
	second.Preferences = trip.Preferences{Budget: &budget, Destination: &dest}
	conv, err := s.ApplyTurn(ctx, "c1", second)
	tester.NoErr(t, err)

	tester.Eq(t, *conv.Preferences.Budget, "low")
	tester.Eq(t, *conv.Preferences.Destination, "Bali")
	tester.Len(t, conv.Messages, 4)
}

func TestListSummaries(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.ApplyTurn(ctx, "a", turn(0))
	tester.NoErr(t, err)
	_, err = s.ApplyTurn(ctx, "b", turn(0))
	tester.NoErr(t, err)
	_, err = s.ApplyTurn(ctx, "b", turn(1))
	tester.NoErr(t, err)

	summaries, err := s.List(ctx)
	tester.NoErr(t, err)
	tester.Len(t, summaries, 2)
	counts := map[string]int{}
	for _, sm := range summaries {
		counts[sm.ID] = sm.MessageCount
	}
	tester.Eq(t, counts["a"], 2)
	tester.Eq(t, counts["b"], 4)
}

func TestConcurrentTurnsSameConversation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	const workers = 32

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.ApplyTurn(ctx, "shared", turn(n))
			if err != nil {
				t.Errorf("turn %d: %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	conv, err := s.Get(ctx, "shared")
	tester.NoErr(t, err)
	tester.Len(t, conv.Messages, workers*2, "no lost appends")
	for i := 0; i < len(conv.Messages); i += 2 {
		// Each turn's pair stays adjacent; turns never interleave.
		tester.Eq(t, conv.Messages[i].Role, RoleUser)
		tester.Eq(t, conv.Messages[i+1].Role, RoleAssistant)
		wantAssistant := "assistant " + conv.Messages[i].Content[len("user "):]
		tester.Eq(t, conv.Messages[i+1].Content, wantAssistant)
	}
}

func TestConcurrentTurnsDistinctConversations(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	const workers = 16

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("conv-%d", n)
			for j := 0; j < 4; j++ {
				if _, err := s.ApplyTurn(ctx, id, turn(j)); err != nil {
					t.Errorf("%s turn %d: %v", id, j, err)
				}
			}
		}(i)
	}
	wg.Wait()

	summaries, err := s.List(ctx)
	tester.NoErr(t, err)
	tester.Len(t, summaries, workers)
	for _, sm := range summaries {
		tester.Eq(t, sm.MessageCount, 8)
	}
}
