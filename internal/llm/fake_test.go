package llm

import (
	"context"
	"testing"

	"tripmate/internal/tester"
	"tripmate/internal/util/jsonutil"
)

func TestFakeClientExtractionOutputParses(t *testing.T) {
	f := NewFakeClient()
	out, err := f.Complete(context.Background(), []Message{
		System("Extract travel preferences from this message. ..."),
		User("hi"),
	}, Options{})
	tester.NoErr(t, err)

	var prefs map[string]any
	tester.NoErr(t, jsonutil.UnmarshalString(out, &prefs))
	tester.Eq(t, len(prefs), 7)
}

func TestFakeClientItineraryOutputParses(t *testing.T) {
	f := NewFakeClient()
	out, err := f.Complete(context.Background(), []Message{
		System("You are a travel expert. Generate detailed itineraries in JSON format."),
		User("plan"),
	}, Options{})
	tester.NoErr(t, err)

	var itin map[string]any
	tester.NoErr(t, jsonutil.UnmarshalString(out, &itin))
	tester.True(t, itin["destination"] != "")
}

func TestFakeClientDefaultsToConversation(t *testing.T) {
	f := NewFakeClient()
	out, err := f.Complete(context.Background(), []Message{
		System("You are TripMate, an AI-powered travel assistant."),
		User("hi"),
	}, Options{})
	tester.NoErr(t, err)
	tester.True(t, out != "")
}
