package planner

import (
	"context"
	"log"

	"tripmate/internal/llm"
	"tripmate/internal/trip"
	"tripmate/internal/util/jsonutil"
)

const extractPrompt = "Extract travel preferences from this message. Return only a JSON object with keys: budget, dates, people, interests, destination, duration, transport_preference. Use null for missing values."

// extractPreferences pulls structured preferences out of a single user
// message. This is best-effort enrichment: any gateway or parse failure is
// logged and collapses to an all-unknown model so the turn can continue.
func (s *Service) extractPreferences(ctx context.Context, message string) trip.Preferences {
	out, err := s.llm.Complete(ctx, []llm.Message{
		llm.System(extractPrompt),
		llm.User(message),
	}, llm.Options{MaxTokens: 500, Temperature: 0.1})
	if err != nil {
		log.Printf("preference extraction failed: %v", err)
		return trip.Preferences{}
	}

	var prefs trip.Preferences
	if err := jsonutil.UnmarshalString(out, &prefs); err != nil {
		log.Printf("preference extraction returned unparseable output: %v", err)
		return trip.Preferences{}
	}
	return prefs
}
