package planner

import (
	"context"
	"log"

	"tripmate/internal/conversation"
	"tripmate/internal/llm"
)

const personaPrompt = `You are TripMate, an AI-powered travel assistant. Your job is to help users plan trips by suggesting:

1. The best travel routes (road, train, flight, bus, etc.)
2. The best places to visit near their location or chosen destination
3. Budget-friendly itineraries (cheap stays, local food, transport hacks)
4. Day-by-day trip plans based on time, distance, and budget
5. Hidden gems and unique activities most tourists miss

When answering, always:
- Ask clarifying questions first (budget, dates, number of people, interests)
- Provide multiple options (luxury, mid-range, budget)
- Include cost estimates wherever possible
- Suggest maps, routes, timings, and alternatives
- Be friendly, conversational, and concise

Your goal is to act like a personal travel planner + local guide + budget manager.

Format your responses as JSON when providing structured data like itineraries or cost estimates.`

const fallbackReply = "I'm having trouble processing your request right now. Please try again in a moment."

// historyWindow caps how many prior messages accompany a turn.
const historyWindow = 10

// respond generates the assistant's conversational reply from the persona
// prompt, a rolling history window and the current message. A failing
// gateway is hidden behind a fixed apology; conversational continuity wins
// over error surfacing here, and only here.
func (s *Service) respond(ctx context.Context, message string, history []conversation.Message) string {
	messages := make([]llm.Message, 0, historyWindow+2)
	messages = append(messages, llm.System(personaPrompt))
	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}
	for _, m := range history[start:] {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.User(message))

	out, err := s.llm.Complete(ctx, messages, llm.Options{
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		log.Printf("conversational reply failed: %v", err)
		return fallbackReply
	}
	return out
}
