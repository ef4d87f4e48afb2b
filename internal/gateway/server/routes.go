package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/gateway/handler"
	"tripmate/internal/gateway/middleware"
)

func NewRouter(
	chatHandler *handler.ChatHandler,
	conversationHandler *handler.ConversationHandler,
	catalogHandler *handler.CatalogHandler,
) http.Handler {
	router := gin.Default()
	router.Use(middleware.CORS())

	api := router.Group("/api/v1")
	{
		api.POST("/chat", chatHandler.Chat)
		api.POST("/plan", chatHandler.Plan)

		api.GET("/conversations", conversationHandler.List)
		api.GET("/conversations/:id", conversationHandler.Get)

		api.GET("/destinations", catalogHandler.Destinations)
		api.GET("/routes", catalogHandler.Routes)
		api.GET("/budget-tips", catalogHandler.BudgetTips)
		api.GET("/hidden-gems", catalogHandler.HiddenGems)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return router
}
