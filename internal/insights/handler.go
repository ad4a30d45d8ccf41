package insights

import (
	"net/http"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/llm"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /forecast/seasonal?category=Food%20%26%20Drinks
// --------------------------------------------------
func (h *Handler) SeasonalOutlook(c *gin.Context) {
	category := c.DefaultQuery("category", "General")

	results := h.service.SeasonalOutlook(c.Request.Context(), category)
	c.JSON(http.StatusOK, results)
}

// --------------------------------------------------
// POST /analyze/inventory
// --------------------------------------------------
func (h *Handler) AnalyzeInventory(c *gin.Context) {
	var items []llm.StockItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	results := h.service.AnalyzeInventory(c.Request.Context(), items)
	c.JSON(http.StatusOK, results)
}
