package planner

import (
	"testing"

	"tripmate/internal/tester"
	"tripmate/internal/trip"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func TestQuestionOrderIsFixed(t *testing.T) {
	got := ClarifyingQuestions(trip.Preferences{})
	want := []string{
		"What's your budget range for this trip? (low/medium/high)",
		"When are you planning to travel?",
		"How many people will be traveling?",
		"What are your main interests? (culture, nature, food, adventure, relaxation, etc.)",
		"Where would you like to go, or what's your starting point?",
		"How long do you want to travel?",
		"Do you have a preferred mode of transportation?",
	}
	tester.Eq(t, got, want)
}

func TestQuestionsOmitExactlyKnownFields(t *testing.T) {
	p := trip.Preferences{
		Budget:      strp("low"),
		Destination: strp("Lisbon"),
		People:      intp(2),
	}
	got := ClarifyingQuestions(p)
	want := []string{
		"When are you planning to travel?",
		"What are your main interests? (culture, nature, food, adventure, relaxation, etc.)",
		"How long do you want to travel?",
		"Do you have a preferred mode of transportation?",
	}
	tester.Eq(t, got, want, "relative order preserved, known fields dropped")
}

func TestQuestionsEmptyWhenAllKnown(t *testing.T) {
	p := trip.Preferences{
		Budget:              strp("medium"),
		Dates:               strp("June"),
		People:              intp(4),
		Interests:           []string{"nature"},
		Destination:         strp("Norway"),
		Duration:            strp("1 week"),
		TransportPreference: strp("train"),
	}
	tester.Len(t, ClarifyingQuestions(p), 0)
}
