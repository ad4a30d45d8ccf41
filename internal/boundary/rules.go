package boundary

import (
	"regexp"
	"strings"
)

// CategoryGeneral disables content filtering entirely.
const CategoryGeneral = "General"

// Rule is the whitelist/blacklist pair defining what content is on-topic
// for one product category. Immutable once the set is built.
type Rule struct {
	Category  string
	Whitelist []string
	Blacklist []string

	// RequireWhitelist makes the whitelist a hard requirement: a candidate
	// must contain at least one whitelist term or it is vetoed. Enabled per
	// category for the most leakage-prone ones.
	RequireWhitelist bool

	blacklistRe *regexp.Regexp
}

// RuleSet holds the per-category rules plus the alias table resolving
// UI-shorthand names to canonical categories.
type RuleSet struct {
	rules   map[string]Rule
	aliases map[string]string
}

// NewRuleSet compiles each rule's blacklist into a single whole-word
// pattern. Blacklist terms are treated as single tokens.
func NewRuleSet(rules []Rule, aliases map[string]string) *RuleSet {
	byName := make(map[string]Rule, len(rules))
	for _, r := range rules {
		if len(r.Blacklist) > 0 {
			escaped := make([]string, 0, len(r.Blacklist))
			for _, term := range r.Blacklist {
				escaped = append(escaped, regexp.QuoteMeta(strings.ToLower(term)))
			}
			r.blacklistRe = regexp.MustCompile(`\b(?:` + strings.Join(escaped, "|") + `)\b`)
		}
		byName[r.Category] = r
	}
	return &RuleSet{rules: byName, aliases: aliases}
}

// DefaultRuleSet returns the boundary rules for the supported retail
// categories.
func DefaultRuleSet() *RuleSet {
	rules := []Rule{
		{
			Category: "Food & Drinks",
			Whitelist: []string{
				"food", "snack", "drink", "beverage", "meal", "tiffin", "sweet",
				"dairy", "milk", "tea", "coffee", "grocery", "bakery", "fruit",
				"vegetable", "spice", "restaurant", "kitchen", "fasting", "menu",
			},
			Blacklist: []string{
				"clothing", "clothes", "apparel", "garment", "fashion", "footwear",
				"saree", "kurta", "electronics", "gadget", "smartphone", "laptop",
				"furniture", "jewellery", "stationery",
			},
			RequireWhitelist: true,
		},
		{
			Category: "Clothes & Apparel",
			Whitelist: []string{
				"clothing", "apparel", "garment", "fashion", "wear", "saree",
				"kurta", "ethnic", "fabric", "textile", "footwear", "accessory",
			},
			Blacklist: []string{
				"food", "snack", "beverage", "dairy", "grocery", "electronics",
				"gadget", "smartphone", "laptop", "medicine", "pharmacy",
			},
		},
		{
			Category: "Stationery & Education",
			Whitelist: []string{
				"stationery", "notebook", "pen", "exam", "school", "college",
				"textbook", "study", "student", "printing", "paper",
			},
			Blacklist: []string{
				"clothing", "apparel", "food", "snack", "beverage", "jewellery",
				"furniture", "medicine",
			},
		},
		{
			Category: "Electronics",
			Whitelist: []string{
				"electronics", "gadget", "smartphone", "mobile", "laptop",
				"charger", "accessory", "appliance", "device", "audio",
			},
			Blacklist: []string{
				"food", "snack", "beverage", "clothing", "apparel", "saree",
				"grocery", "medicine", "flowers",
			},
		},
		{
			Category: "Home Essentials",
			Whitelist: []string{
				"household", "cleaning", "kitchen", "storage", "utensil",
				"detergent", "home", "essential", "furnishing", "decor",
			},
			Blacklist: []string{
				"clothing", "apparel", "smartphone", "laptop", "exam",
				"textbook", "medicine",
			},
		},
		{
			Category: "Healthcare & Wellness",
			Whitelist: []string{
				"health", "medicine", "pharmacy", "wellness", "ayurveda",
				"supplement", "hygiene", "immunity", "clinic", "fitness",
			},
			Blacklist: []string{
				"clothing", "apparel", "electronics", "gadget", "furniture",
				"jewellery", "snack",
			},
		},
		{
			Category: "Flowers",
			Whitelist: []string{
				"flower", "floral", "garland", "marigold", "rose", "bouquet",
				"puja", "decoration", "wedding",
			},
			Blacklist: []string{
				"clothing", "apparel", "electronics", "gadget", "laptop",
				"grocery", "medicine",
			},
		},
	}

	aliases := map[string]string{
		"Food":       "Food & Drinks",
		"Clothes":    "Clothes & Apparel",
		"Stationery": "Stationery & Education",
		"Home":       "Home Essentials",
		"Healthcare": "Healthcare & Wellness",
	}

	return NewRuleSet(rules, aliases)
}

// Resolve maps a truncated/UI-shorthand category name to its canonical
// name. Unknown names pass through unchanged.
func (rs *RuleSet) Resolve(category string) string {
	if canonical, ok := rs.aliases[category]; ok {
		return canonical
	}
	return category
}

// RuleFor returns the rule for a canonical category. Categories outside the
// table (including "General") get an empty rule: no filtering applies.
func (rs *RuleSet) RuleFor(category string) Rule {
	canonical := rs.Resolve(category)
	if r, ok := rs.rules[canonical]; ok {
		return r
	}
	return Rule{Category: canonical}
}

// BlacklistMatch reports whether the blob contains any blacklist term as a
// whole word. The blob is expected to be lowercase already.
func (r Rule) BlacklistMatch(blob string) bool {
	if r.blacklistRe == nil {
		return false
	}
	return r.blacklistRe.MatchString(blob)
}

// WhitelistMatch reports whether the blob contains at least one whitelist
// term (plain substring match).
func (r Rule) WhitelistMatch(blob string) bool {
	for _, term := range r.Whitelist {
		if strings.Contains(blob, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
