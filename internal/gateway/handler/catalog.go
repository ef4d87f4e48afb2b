package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/gateway/catalog"
)

// CatalogHandler serves the static destination/route/tip lookups.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

func (h *CatalogHandler) Destinations(c *gin.Context) {
	results := catalog.Destinations(c.Query("query"), c.Query("budget"))
	c.JSON(http.StatusOK, gin.H{
		"destinations": results,
		"total":        len(results),
	})
}

func (h *CatalogHandler) Routes(c *gin.Context) {
	from := c.Query("from_location")
	to := c.Query("to_location")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from_location and to_location are required"})
		return
	}
	results := catalog.Routes(c.Query("transport_type"))
	c.JSON(http.StatusOK, gin.H{
		"from":   from,
		"to":     to,
		"routes": results,
		"total":  len(results),
	})
}

func (h *CatalogHandler) BudgetTips(c *gin.Context) {
	tips := catalog.BudgetTips()
	c.JSON(http.StatusOK, gin.H{
		"tips":        tips,
		"destination": c.Query("destination"),
		"total_tips":  len(tips),
	})
}

func (h *CatalogHandler) HiddenGems(c *gin.Context) {
	gems := catalog.HiddenGems()
	c.JSON(http.StatusOK, gin.H{
		"hidden_gems": gems,
		"destination": c.Query("destination"),
		"total_gems":  len(gems),
	})
}
