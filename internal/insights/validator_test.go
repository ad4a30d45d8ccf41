package insights

import (
	"context"
	"errors"
	"testing"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/boundary"
)

/*
Fake generator used only for tests. It plays back scripted responses and
counts how many times it was asked.
*/
type fakeGenerator struct {
	responses []string
	err       error
	calls     int
}

func (f *fakeGenerator) Complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	i := f.calls - 1
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	return f.responses[i], nil
}

func newTestValidator(gen *fakeGenerator) *Validator {
	return NewValidator(boundary.DefaultRuleSet(), gen)
}

const goodFoodResponse = `[
  {"event": "Ramzan Iftar Rush", "type": "Religious", "surge": "+30%", "categories": ["Snacks", "Dates"], "insight": "Stock evening snack assortments before sunset hours."},
  {"event": "Monsoon Chai Season", "type": "Weather", "surge": "+20%", "categories": ["Tea", "Pakora Mix"], "insight": "Push hot beverage bundles while rains persist."},
  {"event": "Exam Week Tiffins", "type": "Academic", "surge": "+15%", "categories": ["Tiffin Meals"], "insight": "Offer student meal packs near coaching centres."}
]`

func TestCollectReturnsQuotaAndStopsEarly(t *testing.T) {
	gen := &fakeGenerator{responses: []string{goodFoodResponse}}
	v := newTestValidator(gen)

	got := v.Collect(context.Background(), "Food & Drinks", "sys", "user")

	if len(got) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(got))
	}
	if gen.calls != 1 {
		t.Fatalf("expected early exit after 1 call, got %d", gen.calls)
	}
	for _, in := range got {
		if in.Type != "Food & Drinks" {
			t.Fatalf("type must be overwritten to canonical category, got %q", in.Type)
		}
	}
}

func TestCollectNeverExceedsQuota(t *testing.T) {
	response := `[
  {"event": "A", "insight": "fresh dairy restock advice"},
  {"event": "B", "insight": "grocery bundle advice"},
  {"event": "C", "insight": "tea stall partnership advice"},
  {"event": "D", "insight": "bakery morning rush advice"},
  {"event": "E", "insight": "snack assortment advice"}
]`
	gen := &fakeGenerator{responses: []string{response}}
	v := newTestValidator(gen)

	got := v.Collect(context.Background(), "Food", "sys", "user")
	if len(got) != 3 {
		t.Fatalf("expected exactly 3, got %d", len(got))
	}
}

func TestCollectDeduplicatesEvents(t *testing.T) {
	response := `[
  {"event": "Diwali Sweets", "insight": "stock festive sweet boxes"},
  {"event": "Diwali Sweets", "insight": "stock festive sweet boxes again"},
  {"event": "Fresh Produce Surge", "insight": "morning vegetable restock"}
]`
	gen := &fakeGenerator{responses: []string{response}}
	v := newTestValidator(gen)

	got := v.Collect(context.Background(), "Food & Drinks", "sys", "user")

	seen := map[string]bool{}
	for _, in := range got {
		if seen[in.Event] {
			t.Fatalf("duplicate event %q returned", in.Event)
		}
		seen[in.Event] = true
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 unique insights, got %d", len(got))
	}
}

func TestCollectBlacklistVetoFallsBack(t *testing.T) {
	// Every candidate mentions clothing: off-topic for Food & Drinks
	response := `[
  {"event": "Festive Fashion", "insight": "new clothing line for diwali"},
  {"event": "Winter Wear", "insight": "clothing demand rising"},
  {"event": "Ethnic Styles", "insight": "clothing and saree stocking"}
]`
	gen := &fakeGenerator{responses: []string{response}}
	v := newTestValidator(gen)

	got := v.Collect(context.Background(), "Food & Drinks", "sys", "user")

	if gen.calls != 4 {
		t.Fatalf("expected all 4 attempts spent, got %d", gen.calls)
	}
	if len(got) != 3 {
		t.Fatalf("fallback must have 3 items, got %d", len(got))
	}
	for _, in := range got {
		if in.Event == "Festive Fashion" || in.Event == "Winter Wear" || in.Event == "Ethnic Styles" {
			t.Fatalf("vetoed candidate %q leaked through", in.Event)
		}
	}
}

func TestCollectGeneralNeverVetoes(t *testing.T) {
	// Content that would be vetoed under any category boundary
	response := `[
  {"event": "Mixed Basket", "insight": "clothing electronics food furniture all at once"},
  {"event": "Another", "insight": "laptop saree grocery"},
  {"event": "Third", "insight": "medicine gadget snack"}
]`
	gen := &fakeGenerator{responses: []string{response}}
	v := newTestValidator(gen)

	got := v.Collect(context.Background(), "General", "sys", "user")

	if len(got) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(got))
	}
	if got[0].Event != "Mixed Basket" {
		t.Fatalf("candidate was filtered under General: %+v", got)
	}
}

func TestCollectWhitelistRequirement(t *testing.T) {
	// No blacklist hit, but nothing food-related either
	response := `[
  {"event": "Quiet Week", "insight": "no notable movement expected"},
  {"event": "Neutral Signals", "insight": "markets calm across the board"},
  {"event": "Flat Outlook", "insight": "hold positions"}
]`
	gen := &fakeGenerator{responses: []string{response}}
	v := newTestValidator(gen)

	got := v.Collect(context.Background(), "Food & Drinks", "sys", "user")

	// All off-topic, so the deterministic fallback comes back
	if got[0].Event != "Insufficient market signals" {
		t.Fatalf("expected fallback, got %+v", got)
	}
}

func TestCollectOracleErrorsConsumeAttempts(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection reset")}
	v := newTestValidator(gen)

	got := v.Collect(context.Background(), "Electronics", "sys", "user")

	if gen.calls != 4 {
		t.Fatalf("expected 4 attempts, got %d", gen.calls)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 fallback items, got %d", len(got))
	}
}

func TestCollectPartialSuccess(t *testing.T) {
	// One on-topic candidate per attempt, duplicated events: only 2 unique
	response := `[
  {"event": "Charger Shortage", "insight": "smartphone charger demand rising"},
  {"event": "Charger Shortage", "insight": "smartphone charger demand rising"},
  {"event": "Laptop Season", "insight": "laptop sales around admissions"}
]`
	gen := &fakeGenerator{responses: []string{response}}
	v := newTestValidator(gen)

	got := v.Collect(context.Background(), "Electronics", "sys", "user")

	if len(got) != 2 {
		t.Fatalf("expected partial result of 2, got %d", len(got))
	}
	if gen.calls != 4 {
		t.Fatalf("partial collection should still exhaust attempts, got %d calls", gen.calls)
	}
}

func TestCollectRecoversOnLaterAttempt(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		"sorry, I cannot produce JSON today",
		"here you go:\n```json\n" + goodFoodResponse + "\n```",
	}}
	v := newTestValidator(gen)

	got := v.Collect(context.Background(), "Food", "sys", "user")

	if gen.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", gen.calls)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(got))
	}
	if got[0].Event != "Ramzan Iftar Rush" {
		t.Fatalf("unexpected first insight %+v", got[0])
	}
}

func TestCollectAliasResolvesBeforeFiltering(t *testing.T) {
	gen := &fakeGenerator{responses: []string{goodFoodResponse}}
	v := newTestValidator(gen)

	got := v.Collect(context.Background(), "Food", "sys", "user")

	if got[0].Type != "Food & Drinks" {
		t.Fatalf("alias not resolved to canonical name: %q", got[0].Type)
	}
}
