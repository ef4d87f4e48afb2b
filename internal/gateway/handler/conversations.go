package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/conversation"
)

// ConversationHandler serves conversation lookups.
type ConversationHandler struct {
	store conversation.Store
}

func NewConversationHandler(store conversation.Store) *ConversationHandler {
	return &ConversationHandler{store: store}
}

// List returns summaries of all conversations in creation order.
func (h *ConversationHandler) List(c *gin.Context) {
	summaries, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("list conversations failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list conversations"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// Get returns one full conversation or 404.
func (h *ConversationHandler) Get(c *gin.Context) {
	conv, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, conversation.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	if err != nil {
		log.Printf("get conversation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get conversation"})
		return
	}
	c.JSON(http.StatusOK, conv)
}
