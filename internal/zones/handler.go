package zones

import (
	"net/http"
	"strconv"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/geo"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine  *Engine
	catalog *Catalog
}

func NewHandler(engine *Engine, catalog *Catalog) *Handler {
	return &Handler{engine: engine, catalog: catalog}
}

// --------------------------------------------------
// GET /heatmap?segment=apparel&lat=&lon=
// --------------------------------------------------
func (h *Handler) GetHeatmap(c *gin.Context) {
	segment := c.DefaultQuery("segment", "apparel")

	shop := DefaultShopLocation
	if latStr, lonStr := c.Query("lat"), c.Query("lon"); latStr != "" && lonStr != "" {
		lat, err1 := strconv.ParseFloat(latStr, 64)
		lon, err2 := strconv.ParseFloat(lonStr, 64)
		if err1 == nil && err2 == nil {
			shop = geo.LatLng{Lat: lat, Lon: lon}
		}
	}

	c.JSON(http.StatusOK, h.engine.Compute(shop, segment))
}

// --------------------------------------------------
// GET /regions
// --------------------------------------------------
func (h *Handler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Names())
}
