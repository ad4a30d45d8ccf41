package trend

import "strings"

// Trend directions.
const (
	Increase = "increase"
	Decrease = "decrease"
	Stable   = "stable"
	Unknown  = "unknown"
)

// Zone colors.
const (
	ColorGreen = "green"
	ColorRed   = "red"
)

// Result maps a free-text forecast onto zone coloring.
type Result struct {
	Category         string   `json:"category"`
	Trend            string   `json:"trend"`
	AffectedZones    []string `json:"affected_zones"`
	ColorForAffected string   `json:"color_for_affected_zones"`
	ColorForOthers   string   `json:"color_for_other_zones"`
}

// Keyword sets, checked in precedence order: increase beats decrease beats
// stable. Text matching both an increase and a stable signal classifies as
// increase.
var (
	increaseWords = []string{"surge", "increase", "spike", "rise", "grow", "boom", "high demand", "peak", "bullish", "uptick", "expansion"}
	decreaseWords = []string{"decrease", "drop", "fall", "decline", "reduce", "low demand", "bearish", "slump", "downturn", "contraction"}
	stableWords   = []string{"stable", "steady", "maintain", "consistent", "unchanged", "plateau"}
)

// categoryZoneMap is the coarse category -> zone-tag taxonomy used for
// forecast coloring. Distinct from the geospatial profile table.
var categoryZoneMap = map[string][]string{
	"electrical_appliances": {"RESIDENTIAL"},
	"electronics":           {"COMMERCIAL"},
	"furniture":             {"RESIDENTIAL", "COMMERCIAL"},
	"groceries":             {"RESIDENTIAL", "RETAIL"},
	"flowers":               {"RESIDENTIAL", "COMMERCIAL"},
	"food":                  {"RESIDENTIAL", "RETAIL"},
	"apparel":               {"COMMERCIAL", "RETAIL"},
	"stationery":            {"COMMERCIAL"},
	"unknown":               {},
}

func normalizeCategory(category string) string {
	key := strings.ToLower(category)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "&", "")
	key = strings.ReplaceAll(key, "__", "_")
	return key
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Interpret classifies a natural language demand forecast into a trend and
// zone color mapping. Deterministic, no I/O.
func Interpret(forecastText, category string) Result {
	key := normalizeCategory(category)
	lower := strings.ToLower(forecastText)

	var direction string
	switch {
	case containsAny(lower, increaseWords):
		direction = Increase
	case containsAny(lower, decreaseWords):
		direction = Decrease
	case containsAny(lower, stableWords):
		direction = Stable
	default:
		direction = Unknown
	}

	affected := categoryZoneMap[key]
	if affected == nil {
		affected = []string{}
	}

	var colorAffected, colorOthers string
	switch direction {
	case Increase:
		colorAffected = ColorGreen
		colorOthers = ColorRed
	case Decrease:
		colorAffected = ColorRed
		colorOthers = ColorGreen
	default:
		// Be more decisive: non-surging zones are low immediate opportunity
		colorAffected = ColorRed
		colorOthers = ColorRed
	}

	resultCategory := key
	if _, ok := categoryZoneMap[key]; !ok {
		resultCategory = Unknown
	}

	return Result{
		Category:         resultCategory,
		Trend:            direction,
		AffectedZones:    affected,
		ColorForAffected: colorAffected,
		ColorForOthers:   colorOthers,
	}
}
