package trip

// Preferences holds everything known so far about a planned trip. Every field
// is independently optional: a nil pointer (or nil slice) means the traveler
// has not told us yet, which is distinct from an explicitly provided empty
// value. No validation happens here; a nonsensical people count is stored
// as given.
type Preferences struct {
	Budget              *string  `json:"budget"`
	Dates               *string  `json:"dates"`
	People              *int     `json:"people"`
	Interests           []string `json:"interests"`
	Destination         *string  `json:"destination"`
	Duration            *string  `json:"duration"`
	TransportPreference *string  `json:"transport_preference"`
}

// Merge overlays update onto base, field by field. A field set in update
// replaces the base value wholesale; an unknown field in update leaves the
// base value untouched. Interests are replaced as a unit, never unioned.
func Merge(base, update Preferences) Preferences {
	out := base
	if update.Budget != nil {
		out.Budget = update.Budget
	}
	if update.Dates != nil {
		out.Dates = update.Dates
	}
	if update.People != nil {
		out.People = update.People
	}
	if update.Interests != nil {
		out.Interests = update.Interests
	}
	if update.Destination != nil {
		out.Destination = update.Destination
	}
	if update.Duration != nil {
		out.Duration = update.Duration
	}
	if update.TransportPreference != nil {
		out.TransportPreference = update.TransportPreference
	}
	return out
}

// Ready reports whether enough is known to generate an itinerary:
// destination, duration, budget and people must all be set. Interests,
// dates and transport preference are nice to have, never required.
func (p Preferences) Ready() bool {
	return p.Destination != nil && p.Duration != nil && p.Budget != nil && p.People != nil
}

// BudgetLevel returns the budget token or "" when unknown.
func (p Preferences) BudgetLevel() string {
	if p.Budget == nil {
		return ""
	}
	return *p.Budget
}
