// Package catalog serves the static sample data behind the lookup
// endpoints. Real deployments would back these with external providers;
// here they are fixed tables with simple filtering.
package catalog

import (
	"strings"

	"github.com/samber/lo"
)

type Destination struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	BudgetLevel string   `json:"budget_level"`
	BestTime    string   `json:"best_time"`
	Highlights  []string `json:"highlights"`
}

type Route struct {
	TransportType string `json:"transport_type"`
	Duration      string `json:"duration"`
	Cost          string `json:"cost"`
	Description   string `json:"description"`
	Operator      string `json:"operator"`
}

var destinations = []Destination{
	{
		Name:        "Bali, Indonesia",
		Country:     "Indonesia",
		Description: "Tropical paradise with rich culture and beautiful beaches",
		BudgetLevel: "medium",
		BestTime:    "April-October",
		Highlights:  []string{"Beaches", "Temples", "Rice Terraces", "Culture"},
	},
	{
		Name:        "Santorini, Greece",
		Country:     "Greece",
		Description: "Stunning volcanic island with iconic white architecture",
		BudgetLevel: "high",
		BestTime:    "June-September",
		Highlights:  []string{"Sunset Views", "Beaches", "Wine", "Architecture"},
	},
	{
		Name:        "Tokyo, Japan",
		Country:     "Japan",
		Description: "Modern metropolis blending tradition with innovation",
		BudgetLevel: "high",
		BestTime:    "March-May, September-November",
		Highlights:  []string{"Technology", "Culture", "Food", "Shopping"},
	},
}

var routes = []Route{
	{TransportType: "flight", Duration: "2h 30m", Cost: "$150-300", Description: "Direct flight", Operator: "Sample Airlines"},
	{TransportType: "train", Duration: "4h 15m", Cost: "$50-120", Description: "High-speed rail", Operator: "Sample Railways"},
	{TransportType: "bus", Duration: "6h 30m", Cost: "$25-60", Description: "Express bus service", Operator: "Sample Bus Co."},
}

var budgetTips = []string{
	"Travel during off-peak seasons for better prices",
	"Use local transportation instead of taxis",
	"Stay in hostels or budget hotels",
	"Eat at local restaurants away from tourist areas",
	"Book flights and accommodation in advance",
	"Use travel apps to find deals and discounts",
	"Consider house-sitting or couch-surfing",
	"Take advantage of free walking tours",
	"Use student or senior discounts when available",
	"Pack light to avoid baggage fees",
}

var hiddenGems = []string{
	"Visit local markets early in the morning for authentic experiences",
	"Explore neighborhoods away from main tourist areas",
	"Ask locals for restaurant recommendations",
	"Visit attractions during off-hours for fewer crowds",
	"Take alternative routes to popular destinations",
	"Attend local festivals and events",
	"Visit lesser-known museums and galleries",
	"Explore parks and nature areas",
	"Try street food from local vendors",
	"Take public transportation to see daily life",
}

// Destinations filters the sample set by a free-text query against name and
// country, and by budget level. Empty filters match everything.
func Destinations(query, budget string) []Destination {
	out := destinations
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		out = lo.Filter(out, func(d Destination, _ int) bool {
			return strings.Contains(strings.ToLower(d.Name), q) ||
				strings.Contains(strings.ToLower(d.Country), q)
		})
	}
	if b := strings.ToLower(strings.TrimSpace(budget)); b != "" {
		out = lo.Filter(out, func(d Destination, _ int) bool {
			return d.BudgetLevel == b
		})
	}
	return out
}

// Routes filters the sample routes by transport type; empty matches all.
func Routes(transportType string) []Route {
	tt := strings.ToLower(strings.TrimSpace(transportType))
	if tt == "" {
		return routes
	}
	return lo.Filter(routes, func(r Route, _ int) bool {
		return r.TransportType == tt
	})
}

// BudgetTips returns the fixed tip list.
func BudgetTips() []string { return budgetTips }

// HiddenGems returns the fixed hidden-gem list.
func HiddenGems() []string { return hiddenGems }
