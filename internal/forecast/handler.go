package forecast

import (
	"net/http"
	"strconv"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/geo"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	reconciler *Reconciler
}

func NewHandler(reconciler *Reconciler) *Handler {
	return &Handler{reconciler: reconciler}
}

// --------------------------------------------------
// GET  /forecast/:product_id?lat=&lon=
// POST /forecast/:product_id  {lat, lon, historical_sales}
// --------------------------------------------------

func (h *Handler) GetForecast(c *gin.Context) {
	loc := parseLatLon(c.Query("lat"), c.Query("lon"))

	result, err := h.reconciler.Forecast(c.Request.Context(), c.Param("product_id"), nil, loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) PostForecast(c *gin.Context) {
	var req struct {
		Lat             *float64  `json:"lat"`
		Lon             *float64  `json:"lon"`
		HistoricalSales []float64 `json:"historical_sales"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var loc *geo.LatLng
	if req.Lat != nil && req.Lon != nil {
		loc = &geo.LatLng{Lat: *req.Lat, Lon: *req.Lon}
	}

	result, err := h.reconciler.Forecast(c.Request.Context(), c.Param("product_id"), req.HistoricalSales, loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseLatLon(latStr, lonStr string) *geo.LatLng {
	if latStr == "" || lonStr == "" {
		return nil
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lon, err2 := strconv.ParseFloat(lonStr, 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &geo.LatLng{Lat: lat, Lon: lon}
}
