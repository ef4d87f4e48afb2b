package trip

import (
	"testing"

	"tripmate/internal/tester"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func TestMergeFieldIndependence(t *testing.T) {
	base := Preferences{
		Budget:      strp("low"),
		Destination: strp("Lisbon"),
		Interests:   []string{"food"},
	}
	update := Preferences{
		Budget:    strp("high"),
		Duration:  strp("4 days"),
		Interests: []string{"surfing", "nightlife"},
	}

	out := Merge(base, update)

	tester.Eq(t, *out.Budget, "high", "updated field overwrites")
	tester.Eq(t, *out.Destination, "Lisbon", "unset field keeps base value")
	tester.Eq(t, *out.Duration, "4 days", "new field lands")
	tester.Eq(t, out.Interests, []string{"surfing", "nightlife"}, "interests replaced, not unioned")
	tester.True(t, out.Dates == nil, "untouched unknown stays unknown")
}

func TestMergeEmptyUpdateKeepsBase(t *testing.T) {
	base := Preferences{People: intp(3), Dates: strp("July")}
	out := Merge(base, Preferences{})
	tester.Eq(t, *out.People, 3)
	tester.Eq(t, *out.Dates, "July")
}

func TestMergeDistinguishesEmptyFromUnknown(t *testing.T) {
	base := Preferences{Dates: strp("July")}
	out := Merge(base, Preferences{Dates: strp("")})
	// An explicitly provided empty value still overwrites.
	tester.Eq(t, *out.Dates, "")
}

func TestReadyRequiresAllFourFields(t *testing.T) {
	p := Preferences{}
	tester.False(t, p.Ready())

	p.Interests = []string{"culture", "food"}
	tester.False(t, p.Ready(), "interests alone never make a trip ready")

	p.Destination = strp("Bali")
	p.Duration = strp("5 days")
	p.Budget = strp("medium")
	tester.False(t, p.Ready(), "people still missing")

	p.People = intp(2)
	tester.True(t, p.Ready())

	p.Interests = nil
	p.Dates = nil
	p.TransportPreference = nil
	tester.True(t, p.Ready(), "interests/dates/transport are not required")
}

func TestBudgetLevel(t *testing.T) {
	tester.Eq(t, Preferences{}.BudgetLevel(), "")
	tester.Eq(t, Preferences{Budget: strp("low")}.BudgetLevel(), "low")
}
