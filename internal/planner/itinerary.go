package planner

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tripmate/internal/llm"
	"tripmate/internal/trip"
	"tripmate/internal/util/jsonutil"
)

const itinerarySystemPrompt = "You are a travel expert. Generate detailed itineraries in JSON format."

// GenerateItinerary turns a believed-complete preference model into a
// structured itinerary. It returns nil whenever the gateway fails or the
// output does not match the expected shape; absent means "not yet
// available", never a fatal condition.
func (s *Service) GenerateItinerary(ctx context.Context, prefs trip.Preferences) *trip.Itinerary {
	out, err := s.llm.Complete(ctx, []llm.Message{
		llm.System(itinerarySystemPrompt),
		llm.User(itineraryPrompt(prefs)),
	}, llm.Options{MaxTokens: 2000, Temperature: 0.3})
	if err != nil {
		log.Printf("itinerary generation failed: %v", err)
		return nil
	}

	var itin trip.Itinerary
	if err := jsonutil.UnmarshalString(out, &itin); err != nil {
		log.Printf("itinerary output unparseable: %v", err)
		return nil
	}
	if itin.Destination == "" || itin.Duration == "" {
		log.Printf("itinerary output missing required fields")
		return nil
	}
	return &itin
}

func itineraryPrompt(prefs trip.Preferences) string {
	return fmt.Sprintf(`Create a detailed travel itinerary based on these preferences:
Destination: %s
Duration: %s
Budget: %s
People: %s
Interests: %s

Return a JSON object with this structure:
{
    "destination": "string",
    "duration": "string",
    "daily_plans": [{"day": "string", "activities": ["string"], "cost": "float"}],
    "total_cost": {"accommodation": "float", "transport": "float", "food": "float", "activities": "float"},
    "transport_options": [{"type": "string", "cost": "float", "duration": "string"}],
    "accommodation_suggestions": [{"type": "string", "cost_per_night": "float", "description": "string"}],
    "food_recommendations": [{"name": "string", "type": "string", "cost": "string", "description": "string"}],
    "hidden_gems": ["string"],
    "tips": ["string"]
}`,
		orNotSpecified(prefs.Destination),
		orNotSpecified(prefs.Duration),
		orNotSpecified(prefs.Budget),
		peopleOrNotSpecified(prefs.People),
		interestsOrNotSpecified(prefs.Interests),
	)
}

func orNotSpecified(v *string) string {
	if v == nil || *v == "" {
		return "Not specified"
	}
	return *v
}

func peopleOrNotSpecified(v *int) string {
	if v == nil {
		return "Not specified"
	}
	return fmt.Sprintf("%d", *v)
}

func interestsOrNotSpecified(v []string) string {
	if len(v) == 0 {
		return "Not specified"
	}
	return strings.Join(v, ", ")
}
