package planner

import "tripmate/internal/trip"

// Daily/weekly ranges per budget tier. Unrecognized tokens fall through to
// the "Varies" pair.
var costTable = map[string]trip.CostRange{
	"low":    {Daily: "$30-80", Weekly: "$200-560"},
	"medium": {Daily: "$80-200", Weekly: "$560-1400"},
	"high":   {Daily: "$200-500+", Weekly: "$1400-3500+"},
}

var costBreakdown = trip.CostBreakdown{
	Accommodation: "20-40%",
	Transport:     "15-30%",
	Food:          "20-30%",
	Activities:    "10-25%",
}

// EstimateCosts maps a budget token to its fixed daily/weekly range pair.
func EstimateCosts(budget string) trip.CostRange {
	if r, ok := costTable[budget]; ok {
		return r
	}
	return trip.CostRange{Daily: "Varies", Weekly: "Varies"}
}

// CostEstimateFor builds the full estimate for a preference model, or nil
// while the budget is still unknown. A budget that was provided but is empty
// or unrecognized still yields an estimate, with the "Varies" range pair.
func CostEstimateFor(prefs trip.Preferences) *trip.CostEstimate {
	if prefs.Budget == nil {
		return nil
	}
	level := prefs.BudgetLevel()
	return &trip.CostEstimate{
		BudgetLevel:    level,
		EstimatedTotal: EstimateCosts(level),
		Breakdown:      costBreakdown,
	}
}
