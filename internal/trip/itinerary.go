package trip

// Itinerary is the structured day-by-day plan produced from a complete set of
// preferences. It is derived output, generated fresh on every call and never
// updated incrementally.
type Itinerary struct {
	Destination              string                    `json:"destination"`
	Duration                 string                    `json:"duration"`
	DailyPlans               []DailyPlan               `json:"daily_plans"`
	TotalCost                map[string]float64        `json:"total_cost"`
	TransportOptions         []TransportOption         `json:"transport_options"`
	AccommodationSuggestions []AccommodationSuggestion `json:"accommodation_suggestions"`
	FoodRecommendations      []FoodRecommendation      `json:"food_recommendations"`
	HiddenGems               []string                  `json:"hidden_gems"`
	Tips                     []string                  `json:"tips"`
}

type DailyPlan struct {
	Day        string   `json:"day"`
	Activities []string `json:"activities"`
	Cost       float64  `json:"cost"`
}

type TransportOption struct {
	Type     string  `json:"type"`
	Cost     float64 `json:"cost"`
	Duration string  `json:"duration"`
}

type AccommodationSuggestion struct {
	Type         string  `json:"type"`
	CostPerNight float64 `json:"cost_per_night"`
	Description  string  `json:"description"`
}

type FoodRecommendation struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Cost        string `json:"cost"`
	Description string `json:"description"`
}

// CostEstimate is the fixed-table estimate attached to a turn once the budget
// level is known.
type CostEstimate struct {
	BudgetLevel    string        `json:"budget_level"`
	EstimatedTotal CostRange     `json:"estimated_total"`
	Breakdown      CostBreakdown `json:"breakdown"`
}

type CostRange struct {
	Daily  string `json:"daily"`
	Weekly string `json:"weekly"`
}

// CostBreakdown is the percentage split of a trip budget by spend category.
type CostBreakdown struct {
	Accommodation string `json:"accommodation"`
	Transport     string `json:"transport"`
	Food          string `json:"food"`
	Activities    string `json:"activities"`
}
