package trend

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTrendTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/interpret-forecast", NewHandler().InterpretForecast)
	return r
}

func TestInterpretForecastEndpoint(t *testing.T) {
	r := setupTrendTestRouter()

	body, _ := json.Marshal(map[string]string{
		"forecast_text": "Demand for electronics will spike next week",
		"category":      "electronics",
	})
	req := httptest.NewRequest(http.MethodPost, "/interpret-forecast", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp Result
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Trend != Increase {
		t.Fatalf("expected increase, got %s", resp.Trend)
	}
	if resp.ColorForAffected != ColorGreen || resp.ColorForOthers != ColorRed {
		t.Fatalf("wrong colors: %+v", resp)
	}
}

func TestInterpretForecastDefaultsCategory(t *testing.T) {
	r := setupTrendTestRouter()

	body, _ := json.Marshal(map[string]string{
		"forecast_text": "sales will drop",
	})
	req := httptest.NewRequest(http.MethodPost, "/interpret-forecast", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp Result
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Category != Unknown {
		t.Fatalf("expected unknown category, got %s", resp.Category)
	}
	if len(resp.AffectedZones) != 0 {
		t.Fatalf("expected no zones, got %v", resp.AffectedZones)
	}
}
