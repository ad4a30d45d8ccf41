package insights

import (
	"context"
	"log"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/boundary"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/llm"
)

// Bounded-retry protocol constants. Four attempts balances latency against
// an oracle that frequently violates format or topic constraints.
const (
	maxAttempts = 4
	quota       = 3

	oracleMaxTokens   = 500
	oracleTemperature = 0.7
)

// Validator constrains the generative oracle to a bounded, deduplicated,
// on-topic result set. All state is local to one call; concurrent use is
// safe.
type Validator struct {
	rules  *boundary.RuleSet
	oracle llm.Generator
}

func NewValidator(rules *boundary.RuleSet, oracle llm.Generator) *Validator {
	return &Validator{rules: rules, oracle: oracle}
}

// Collect queries the oracle up to maxAttempts times and returns at most
// quota validated insights for the category. It never returns an empty
// slice and never propagates an oracle failure: exhaustion degrades to the
// deterministic fallback set.
func (v *Validator) Collect(ctx context.Context, category, systemPrompt, userPrompt string) []Insight {
	canonical := v.rules.Resolve(category)
	rule := v.rules.RuleFor(canonical)
	filtering := canonical != boundary.CategoryGeneral

	collected := make([]Insight, 0, quota)
	seenEvents := make(map[string]bool)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		response, err := v.oracle.Complete(ctx, systemPrompt, userPrompt, oracleMaxTokens, oracleTemperature)
		if err != nil {
			// One attempt burned, loop continues
			log.Printf("INSIGHT_ORACLE_FAILED category=%s attempt=%d err=%v", canonical, attempt, err)
			continue
		}

		candidates, err := parseCandidates(response)
		if err != nil {
			log.Printf("INSIGHT_UNPARSABLE category=%s attempt=%d err=%v", canonical, attempt, err)
			continue
		}

		for _, cand := range candidates {
			blob := cand.blob()

			if filtering && rule.BlacklistMatch(blob) {
				log.Printf("INSIGHT_VETOED category=%s event=%q", canonical, cand.Event)
				continue
			}
			if filtering && rule.RequireWhitelist && !rule.WhitelistMatch(blob) {
				log.Printf("INSIGHT_OFF_TOPIC category=%s event=%q", canonical, cand.Event)
				continue
			}

			if seenEvents[cand.Event] {
				continue
			}

			cand.Type = canonical
			seenEvents[cand.Event] = true
			collected = append(collected, cand)
		}

		if len(collected) >= quota {
			return collected[:quota]
		}
	}

	if len(collected) > 0 {
		// Partial success: fewer than quota, caller tolerates it
		return collected
	}

	log.Printf("INSIGHT_EXHAUSTED category=%s attempts=%d", canonical, maxAttempts)
	return fallbackInsights(canonical)
}
