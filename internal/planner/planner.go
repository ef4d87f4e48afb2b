package planner

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"tripmate/internal/conversation"
	"tripmate/internal/llm"
	"tripmate/internal/trip"
)

// Service orchestrates one conversational turn: extract preferences, merge
// them into the stored model, derive clarifying questions, produce the
// reply, and generate an itinerary plus cost estimate once enough is known.
type Service struct {
	llm         llm.Client
	store       conversation.Store
	locks       conversation.KeyedMutex
	maxTokens   int
	temperature float64
}

func New(client llm.Client, store conversation.Store, maxTokens int, temperature float64) *Service {
	if maxTokens <= 0 {
		maxTokens = 2000
	}
	if temperature <= 0 {
		temperature = 0.7
	}
	return &Service{
		llm:         client,
		store:       store,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// TurnResult is the composed outcome of a single turn.
type TurnResult struct {
	ConversationID      string
	Reply               string
	ClarifyingQuestions []string
	Itinerary           *trip.Itinerary
	CostEstimate        *trip.CostEstimate
	Preferences         trip.Preferences
}

// HandleTurn processes one inbound message. A blank conversation id mints a
// fresh one. Turns on the same conversation are serialized in arrival
// order; the store commit at the end is all-or-nothing, so an abandoned
// request never leaves a half-applied turn behind.
func (s *Service) HandleTurn(ctx context.Context, conversationID, message string) (TurnResult, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	unlock := s.locks.Lock(conversationID)
	defer unlock()

	conv, err := s.store.Get(ctx, conversationID)
	if err != nil && !errors.Is(err, conversation.ErrNotFound) {
		return TurnResult{}, err
	}

	extracted := s.extractPreferences(ctx, message)
	merged := trip.Merge(conv.Preferences, extracted)

	questions := ClarifyingQuestions(merged)
	reply := s.respond(ctx, message, conv.Messages)

	var itinerary *trip.Itinerary
	if merged.Ready() {
		itinerary = s.GenerateItinerary(ctx, merged)
	}
	estimate := CostEstimateFor(merged)

	if _, err := s.store.ApplyTurn(ctx, conversationID, conversation.Turn{
		UserMessage:      conversation.NewMessage(conversation.RoleUser, message),
		AssistantMessage: conversation.NewMessage(conversation.RoleAssistant, reply),
		Preferences:      merged,
	}); err != nil {
		return TurnResult{}, err
	}

	return TurnResult{
		ConversationID:      conversationID,
		Reply:               reply,
		ClarifyingQuestions: questions,
		Itinerary:           itinerary,
		CostEstimate:        estimate,
		Preferences:         merged,
	}, nil
}
