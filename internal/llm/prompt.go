package llm

import (
	"fmt"
	"strings"
)

// SeasonalOutlookSystemPrompt frames the oracle as a category-scoped market
// intelligence engine for Mumbai SMEs.
const SeasonalOutlookSystemPrompt = `You are a category-specific AI market intelligence engine for Mumbai-based SMEs.`

// BuildSeasonalOutlookPrompt asks for 3 tactical market predictions strictly
// limited to one category. The oracle frequently violates both the format
// and the category constraint; the validator handles that.
func BuildSeasonalOutlookPrompt(category string) string {
	return fmt.Sprintf(`CURRENT MANDATORY CATEGORY: %[1]s

Task: Generate 3 tactical market predictions for the next 7-30 days in India, strictly limited to the '%[1]s' sector.

Rules for Category Fidelity:
- CRITICAL: Every prediction MUST be directly about products or trends WITHIN the '%[1]s' business.
- If the category is 'Food & Drinks', do NOT talk about clothes or electronics.
- Even when referencing general cultural triggers (like Ramzan or Exams), explain the impact SPECIFICALLY on '%[1]s' items.

Rules for Context:
- Must be India-specific (Focus on Mumbai/Maharashtra patterns if possible).
- Focus on near-future cultural/seasonal shifts.
- 'insight' must be a human-like tactical advice for an SME owner.
- 'categories' must be a list of specific sub-categories within '%[1]s'.

Return ONLY a valid JSON list of exactly 3 objects with this structure:
[
  {
    "event": "Event Name",
    "type": "Religious/Academic/Weather/Economic",
    "surge": "+X%%",
    "categories": ["Sub-cat1", "Sub-cat2"],
    "insight": "Specific tactical advice..."
  }
]`, category)
}

// StockItem is one inventory line as supplied by the caller.
type StockItem struct {
	Name          string  `json:"name"`
	CurrentStock  float64 `json:"current_stock"`
	MinStockLevel float64 `json:"min_stock_level"`
	Category      string  `json:"category"`
}

// BuildInventoryAnalysisPrompt asks for risk/opportunity insights over the
// caller's stock levels, in the same JSON-list shape as the seasonal
// outlook so the same validation protocol applies.
func BuildInventoryAnalysisPrompt(items []StockItem) string {
	var lines []string
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("- %s: stock %.0f (min %.0f), category %s",
			it.Name, it.CurrentStock, it.MinStockLevel, it.Category))
	}
	if len(lines) == 0 {
		lines = append(lines, "- (no inventory supplied)")
	}

	return fmt.Sprintf(`You advise a small Indian retailer on inventory risk and opportunity.

CURRENT INVENTORY:
%s

Task: Generate 3 short risk or opportunity insights. Flag items below their minimum level as restock risks and healthy items with seasonal upside as opportunities.

Return ONLY a valid JSON list of exactly 3 objects with this structure:
[
  {
    "event": "Risk or Opportunity headline",
    "type": "Risk/Opportunity",
    "surge": "+X%%",
    "categories": ["Item or category names"],
    "insight": "Specific tactical advice..."
  }
]`, strings.Join(lines, "\n"))
}
