package insights

// fallbackInsights is the deterministic last tier: exactly 3 synthetic
// records carrying no oracle content, so the caller never sees an empty or
// failed response.
func fallbackInsights(category string) []Insight {
	return []Insight{
		{
			Event:      "Insufficient market signals",
			Type:       "System",
			Surge:      "0%",
			Categories: []string{category},
			Insight:    "Monitoring real-time patterns for this category. Check back shortly.",
		},
		{
			Event:      "Regional Baseline Trend",
			Type:       "General",
			Surge:      "+5%",
			Categories: []string{category},
			Insight:    "Maintain standard safety stock levels while signal strength improves.",
		},
		{
			Event:      "Logistics Calibration",
			Type:       "Operation",
			Surge:      "Stable",
			Categories: []string{"Logistics"},
			Insight:    "Focus on last-mile efficiency while demand matures.",
		},
	}
}
