package trend

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// --------------------------------------------------
// POST /interpret-forecast
// --------------------------------------------------
func (h *Handler) InterpretForecast(c *gin.Context) {
	var req struct {
		ForecastText string `json:"forecast_text"`
		Category     string `json:"category"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Category == "" {
		req.Category = Unknown
	}

	c.JSON(http.StatusOK, Interpret(req.ForecastText, req.Category))
}
