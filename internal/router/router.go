package router

import (
	"time"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/auth"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/forecast"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/insights"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/middleware"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/trend"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/zones"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects every feature handler the router wires up.
type Handlers struct {
	Auth     *auth.Handler
	Trend    *trend.Handler
	Zones    *zones.Handler
	Insights *insights.Handler
	Forecast *forecast.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// Intelligence routes require a valid retailer bearer token
	intel := r.Group("/")
	intel.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRetailer(),
	)
	{
		intel.POST("/interpret-forecast", h.Trend.InterpretForecast)

		intel.GET("/heatmap", h.Zones.GetHeatmap)
		intel.GET("/regions", h.Zones.GetRegions)

		intel.GET("/forecast/seasonal", h.Insights.SeasonalOutlook)
		intel.POST("/analyze/inventory", h.Insights.AnalyzeInventory)

		intel.GET("/forecast/:product_id", h.Forecast.GetForecast)
		intel.POST("/forecast/:product_id", h.Forecast.PostForecast)
	}

	return r
}
