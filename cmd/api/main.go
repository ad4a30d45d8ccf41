package main

import (
	"log"
	"os"
	"time"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/auth"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/boundary"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/forecast"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/insights"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/llm"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/randutil"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/router"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/trend"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/zones"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
	}
	if os.Getenv("LLM_PROVIDER") == "llama" {
		required = append(required, "LLAMA_API_KEY", "LLAMA_API_URL")
	} else {
		required = append(required, "GEMINI_API_KEY", "GEMINI_MODEL")
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── STATIC TABLES ─────────────────────────
	catalog := zones.DefaultCatalog()
	profiles := zones.DefaultProfileTable()
	rules := boundary.DefaultRuleSet()
	calendar := forecast.DefaultCalendar()
	// Shared across all request handlers, so it must be concurrency-safe
	rng := randutil.NewLockedRand(time.Now().UnixNano())

	// ───────────────────────── ORACLES ─────────────────────────
	var generator llm.Generator
	if os.Getenv("LLM_PROVIDER") == "llama" {
		generator = llm.NewLLaMAClient()
	} else {
		generator = llm.NewGeminiClient()
	}

	numericOracle := forecast.NewMovingAverageOracle()

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(auth.NewInMemoryUserRepository())
	demandEngine := zones.NewEngine(catalog, profiles, rng)
	insightService := insights.NewService(rules, generator)
	reconciler := forecast.NewReconciler(catalog, numericOracle, calendar, rng)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Auth:     auth.NewHandler(authService),
		Trend:    trend.NewHandler(),
		Zones:    zones.NewHandler(demandEngine, catalog),
		Insights: insights.NewHandler(insightService),
		Forecast: forecast.NewHandler(reconciler),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal(err)
	}
}
