package planner

import (
	"testing"

	"tripmate/internal/tester"
	"tripmate/internal/trip"
)

func TestEstimateCostsKnownTiers(t *testing.T) {
	tester.Eq(t, EstimateCosts("low"), trip.CostRange{Daily: "$30-80", Weekly: "$200-560"})
	tester.Eq(t, EstimateCosts("medium"), trip.CostRange{Daily: "$80-200", Weekly: "$560-1400"})
	tester.Eq(t, EstimateCosts("high"), trip.CostRange{Daily: "$200-500+", Weekly: "$1400-3500+"})
}

func TestEstimateCostsUnknownToken(t *testing.T) {
	tester.Eq(t, EstimateCosts("lavish"), trip.CostRange{Daily: "Varies", Weekly: "Varies"})
	tester.Eq(t, EstimateCosts(""), trip.CostRange{Daily: "Varies", Weekly: "Varies"})
}

func TestCostEstimateForRequiresBudget(t *testing.T) {
	tester.True(t, CostEstimateFor(trip.Preferences{}) == nil)

	budget := "low"
	est := CostEstimateFor(trip.Preferences{Budget: &budget})
	tester.True(t, est != nil)
	tester.Eq(t, est.BudgetLevel, "low")
	tester.Eq(t, est.EstimatedTotal.Daily, "$30-80")
	tester.Eq(t, est.Breakdown.Accommodation, "20-40%")
	tester.Eq(t, est.Breakdown.Activities, "10-25%")
}

// A budget that was set, even to an empty or unrecognized token, must still
// produce an estimate: any preference state that passes Ready gets a cost
// estimate alongside the itinerary.
func TestCostEstimateForSetButEmptyBudget(t *testing.T) {
	empty := ""
	prefs := trip.Preferences{
		Budget:      &empty,
		Destination: strp("Bali"),
		Duration:    strp("5 days"),
		People:      intp(2),
	}
	tester.True(t, prefs.Ready())

	est := CostEstimateFor(prefs)
	tester.True(t, est != nil)
	tester.Eq(t, est.BudgetLevel, "")
	tester.Eq(t, est.EstimatedTotal, trip.CostRange{Daily: "Varies", Weekly: "Varies"})
	tester.Eq(t, est.Breakdown, costBreakdown)
}
