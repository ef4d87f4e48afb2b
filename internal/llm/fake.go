package llm

import (
	"context"
	"strings"
)

// FakeClient returns deterministic, minimal payloads for offline runs and
// tests. It keys off the system instruction of the request to decide which
// kind of answer to fabricate.
type FakeClient struct{}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Complete(_ context.Context, messages []Message, _ Options) (string, error) {
	var system string
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = m.Content
			break
		}
	}
	switch {
	case strings.Contains(system, "Extract travel preferences"):
		return `{"budget": null, "dates": null, "people": null, "interests": null, "destination": null, "duration": null, "transport_preference": null}`, nil
	case strings.Contains(system, "travel expert"):
		return `{
  "destination": "Sample City",
  "duration": "3 days",
  "daily_plans": [{"day": "Day 1", "activities": ["Walking tour", "Local market"], "cost": 40}],
  "total_cost": {"accommodation": 120, "transport": 60, "food": 90, "activities": 50},
  "transport_options": [{"type": "train", "cost": 30, "duration": "2h"}],
  "accommodation_suggestions": [{"type": "hostel", "cost_per_night": 25, "description": "central, basic"}],
  "food_recommendations": [{"name": "Old Town Eats", "type": "street food", "cost": "$", "description": "cheap local plates"}],
  "hidden_gems": ["Rooftop viewpoint behind the station"],
  "tips": ["Buy a day pass for public transport"]
}`, nil
	default:
		return "Happy to help plan your trip! Could you tell me a bit more about where you want to go and for how long?", nil
	}
}
