package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/planner"
	"tripmate/internal/trip"
)

// ChatHandler exposes the conversational planning pipeline over HTTP.
type ChatHandler struct {
	planner *planner.Service
}

func NewChatHandler(p *planner.Service) *ChatHandler {
	return &ChatHandler{planner: p}
}

type chatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id"`
}

type chatResponse struct {
	Message        string             `json:"message"`
	ConversationID string             `json:"conversation_id"`
	Suggestions    []string           `json:"suggestions"`
	Itinerary      *trip.Itinerary    `json:"itinerary,omitempty"`
	CostEstimate   *trip.CostEstimate `json:"cost_estimate,omitempty"`
	NextQuestions  []string           `json:"next_questions"`
}

// Chat handles one turn of the trip-planning conversation.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.planner.HandleTurn(c.Request.Context(), req.ConversationID, req.Message)
	if err != nil {
		log.Printf("chat turn failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing chat message"})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Message:        result.Reply,
		ConversationID: result.ConversationID,
		Suggestions:    result.ClarifyingQuestions,
		Itinerary:      result.Itinerary,
		CostEstimate:   result.CostEstimate,
		NextQuestions:  result.ClarifyingQuestions,
	})
}

// Plan generates a complete itinerary directly from posted preferences.
func (h *ChatHandler) Plan(c *gin.Context) {
	var prefs trip.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	itinerary := h.planner.GenerateItinerary(c.Request.Context(), prefs)
	if itinerary == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not generate itinerary with provided preferences"})
		return
	}
	c.JSON(http.StatusOK, itinerary)
}
