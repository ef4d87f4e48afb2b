package planner

import "tripmate/internal/trip"

// ClarifyingQuestions returns one fixed prompt per still-unknown preference
// field, always in the same order: budget, dates, people, interests,
// destination, duration, transport preference. Known fields are omitted; a
// fully known model yields an empty list.
func ClarifyingQuestions(p trip.Preferences) []string {
	questions := make([]string, 0, 7)
	if p.Budget == nil {
		questions = append(questions, "What's your budget range for this trip? (low/medium/high)")
	}
	if p.Dates == nil {
		questions = append(questions, "When are you planning to travel?")
	}
	if p.People == nil {
		questions = append(questions, "How many people will be traveling?")
	}
	if p.Interests == nil {
		questions = append(questions, "What are your main interests? (culture, nature, food, adventure, relaxation, etc.)")
	}
	if p.Destination == nil {
		questions = append(questions, "Where would you like to go, or what's your starting point?")
	}
	if p.Duration == nil {
		questions = append(questions, "How long do you want to travel?")
	}
	if p.TransportPreference == nil {
		questions = append(questions, "Do you have a preferred mode of transportation?")
	}
	return questions
}
