package insights

import (
	"context"

	"github.com/Gdgddgdgz/GenesisHackathon/internal/boundary"
	"github.com/Gdgddgdgz/GenesisHackathon/internal/llm"
)

// Service exposes the two oracle-backed operations sharing the bounded
// validation protocol.
type Service struct {
	validator *Validator
}

func NewService(rules *boundary.RuleSet, oracle llm.Generator) *Service {
	return &Service{
		validator: NewValidator(rules, oracle),
	}
}

// SeasonalOutlook returns up to 3 on-topic market predictions for the
// category.
func (s *Service) SeasonalOutlook(ctx context.Context, category string) []Insight {
	return s.validator.Collect(
		ctx,
		category,
		llm.SeasonalOutlookSystemPrompt,
		llm.BuildSeasonalOutlookPrompt(category),
	)
}

// AnalyzeInventory returns up to 3 risk/opportunity insights over the
// caller's stock levels. Runs under "General" rules: the items span
// categories, so no single boundary applies.
func (s *Service) AnalyzeInventory(ctx context.Context, items []llm.StockItem) []Insight {
	return s.validator.Collect(
		ctx,
		boundary.CategoryGeneral,
		llm.SeasonalOutlookSystemPrompt,
		llm.BuildInventoryAnalysisPrompt(items),
	)
}
