package analyzing

import (
	"sort"

	"github.com/vfg2006/ad-analyzer-api/internal/domain"
)

// Prioritize ordena as recomendações por severidade (high, medium, low). A
// ordenação é estável: empates preservam a ordem de emissão das regras.
func Prioritize(recommendations []domain.Recommendation) []domain.Recommendation {
	prioritized := make([]domain.Recommendation, len(recommendations))
	copy(prioritized, recommendations)

	sort.SliceStable(prioritized, func(i, j int) bool {
		return prioritized[i].Severity.Rank() < prioritized[j].Severity.Rank()
	})

	return prioritized
}

// BuildActionPlan extrai o plano de ação executivo das recomendações já
// priorizadas: a primeira ação de cada uma é a ação principal, com a equipe
// responsável decidida pelo título
func BuildActionPlan(recommendations []domain.Recommendation) []domain.ActionPlanEntry {
	plan := make([]domain.ActionPlanEntry, 0, len(recommendations))

	for _, rec := range recommendations {
		if len(rec.Actions) == 0 {
			continue
		}

		plan = append(plan, domain.ActionPlanEntry{
			Priority:  rec.Severity.Label(),
			Action:    rec.Actions[0],
			Owner:     domain.OwnerForRecommendation(rec),
			Timeframe: rec.Timeframe,
		})
	}

	return plan
}
