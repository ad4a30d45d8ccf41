package insights

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/boundary"

	"github.com/gin-gonic/gin"
)

func setupInsightsTestRouter(gen *fakeGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(&Service{validator: NewValidator(boundary.DefaultRuleSet(), gen)})
	r.GET("/forecast/seasonal", handler.SeasonalOutlook)
	r.POST("/analyze/inventory", handler.AnalyzeInventory)

	return r
}

func TestSeasonalOutlookEndpoint(t *testing.T) {
	r := setupInsightsTestRouter(&fakeGenerator{responses: []string{goodFoodResponse}})

	req := httptest.NewRequest(http.MethodGet, "/forecast/seasonal?category=Food", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []Insight
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(resp))
	}
	if resp[0].Type != "Food & Drinks" {
		t.Fatalf("expected canonical category, got %q", resp[0].Type)
	}
}

func TestAnalyzeInventoryEndpoint(t *testing.T) {
	response := `[
  {"event": "Salt Restock Risk", "type": "Risk", "insight": "TATA Salt below minimum, reorder now"},
  {"event": "Oil Opportunity", "type": "Opportunity", "insight": "cooking oil demand climbing"},
  {"event": "Rice Stable", "type": "Opportunity", "insight": "rice stock healthy"}
]`
	r := setupInsightsTestRouter(&fakeGenerator{responses: []string{response}})

	items := []map[string]any{
		{"name": "TATA Salt", "current_stock": 4, "min_stock_level": 10, "category": "Food"},
	}
	body, _ := json.Marshal(items)

	req := httptest.NewRequest(http.MethodPost, "/analyze/inventory", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []Insight
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(resp))
	}
}

func TestAnalyzeInventoryRejectsBadBody(t *testing.T) {
	r := setupInsightsTestRouter(&fakeGenerator{responses: []string{goodFoodResponse}})

	req := httptest.NewRequest(http.MethodPost, "/analyze/inventory", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
