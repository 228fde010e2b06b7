package analyzing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ad-analyzer-api/internal/domain"
	"github.com/vfg2006/ad-analyzer-api/pkg/utils"
)

// Multiplicadores dos cenários de projeção para os próximos 7 dias
var projectionScenarios = []struct {
	name        string
	impressions float64
	conversions float64
	spend       float64
}{
	{name: "Conservador", impressions: 0.9, conversions: 0.9, spend: 0.9},
	{name: "Otimista", impressions: 1.3, conversions: 1.5, spend: 1.5},
	{name: "Pessimista", impressions: 0.7, conversions: 0.6, spend: 0.7},
}

// GenerateStrategicAnalysis monta a análise estratégica completa do anúncio:
// pontos fortes, oportunidades de melhoria, orientações por objetivo, plano de
// ação priorizado e projeção de resultados quando há série temporal
func GenerateStrategicAnalysis(
	ad *domain.AdContext,
	insights *domain.InsightRecord,
	derived domain.DerivedMetrics,
	segments *domain.SegmentSummary,
	temporal *domain.TemporalSummary,
) *domain.StrategicAnalysis {
	analysis := &domain.StrategicAnalysis{
		Strengths:       buildStrengths(derived, segments),
		Improvements:    buildImprovements(derived, temporal),
		ObjectiveAdvice: objectiveAdvice(ad.CampaignObjective),
		ActionPlan:      buildStrategicPlan(derived, temporal),
	}

	if temporal != nil {
		analysis.Projections = buildProjections(insights)
	}

	return analysis
}

// buildStrengths identifica os pontos fortes do anúncio frente aos benchmarks
func buildStrengths(derived domain.DerivedMetrics, segments *domain.SegmentSummary) []string {
	strengths := make([]string, 0, 4)

	if derived.CTR > fixedBenchmarks.CTR*1.2 {
		strengths = append(strengths, fmt.Sprintf(
			"CTR excelente (%.2f%%) - %.1fx acima da média",
			derived.CTR, derived.CTR/fixedBenchmarks.CTR,
		))
	}

	if derived.ConversionRate > fixedBenchmarks.ConversionRate*1.2 {
		strengths = append(strengths, fmt.Sprintf(
			"Taxa de conversão alta (%.2f%%) - Eficiência no funnel", derived.ConversionRate,
		))
	}

	if derived.CostPerConversion > 0 && derived.CostPerConversion < fixedBenchmarks.CostPerConversion*0.8 {
		strengths = append(strengths, fmt.Sprintf(
			"Custo por conversão baixo (R$%.2f) - Eficiência de gastos", derived.CostPerConversion,
		))
	}

	if segments != nil {
		if top, err := BestSegment(segments.Segments, "ctr"); err == nil && top.CTR > fixedBenchmarks.CTR*1.5 {
			strengths = append(strengths, fmt.Sprintf(
				"Segmento de alto desempenho: %s %s (CTR: %.2f%%)", top.Gender, top.Age, top.CTR,
			))
		}
	}

	return strengths
}

// buildImprovements identifica as oportunidades de melhoria frente aos
// benchmarks, incluindo o risco de saturação quando há série temporal
func buildImprovements(derived domain.DerivedMetrics, temporal *domain.TemporalSummary) []string {
	improvements := make([]string, 0, 4)

	if derived.CTR < fixedBenchmarks.CTR*0.8 {
		improvements = append(improvements, fmt.Sprintf(
			"CTR baixo (%.2f%%) - Testar novos criativos e chamadas para ação", derived.CTR,
		))
	}

	if derived.ConversionRate < fixedBenchmarks.ConversionRate*0.8 {
		improvements = append(improvements, fmt.Sprintf(
			"Taxa de conversão baixa (%.2f%%) - Otimizar landing page e jornada do usuário",
			derived.ConversionRate,
		))
	}

	if derived.CostPerConversion > fixedBenchmarks.CostPerConversion*1.2 {
		improvements = append(improvements, fmt.Sprintf(
			"Custo por conversão alto (R$%.2f) - Refinar público-alvo e segmentação",
			derived.CostPerConversion,
		))
	}

	if temporal != nil && temporal.MeanFrequency > quickFrequencyMax {
		improvements = append(improvements, fmt.Sprintf(
			"Frequência alta (%.1fx) - Risco de saturação, considere atualizar criativos ou expandir público",
			temporal.MeanFrequency,
		))
	}

	return improvements
}

// objectiveAdvice retorna as orientações específicas para o objetivo da
// campanha, com um conjunto genérico para objetivos não reconhecidos
func objectiveAdvice(objective string) []string {
	normalized := strings.ToLower(objective)

	switch {
	case strings.Contains(normalized, "conversion"):
		return []string{
			"Teste diferentes CTAs na landing page",
			"Implemente eventos de conversão secundários",
			"Otimize para públicos similares a convertidos",
		}
	case strings.Contains(normalized, "awareness"):
		return []string{
			"Aumente o alcance com formatos de vídeo",
			"Utilize o recurso de expansão de público",
			"Monitore a frequência para evitar saturação",
		}
	default:
		return []string{
			"Teste pelo menos 3 variações de criativos",
			"Experimente diferentes horários de veiculação",
			"Ajuste bids conforme performance por segmento",
		}
	}
}

// buildStrategicPlan monta o plano de ação priorizado. Sem problemas críticos
// identificados, o plano padrão é escalonar o que já funciona.
func buildStrategicPlan(derived domain.DerivedMetrics, temporal *domain.TemporalSummary) []domain.StrategicAction {
	plan := make([]domain.StrategicAction, 0, 3)

	if derived.CTR < fixedBenchmarks.CTR*0.8 {
		plan = append(plan, domain.StrategicAction{
			Priority: "Alta",
			Action:   "Otimizar CTR",
			Tasks: []string{
				"Criar 3 variações de imagens/thumbnails",
				"Testar diferentes textos principais (max 125 chars)",
				"Posicionar CTA mais destacado",
			},
			Timeframe:    "3 dias",
			TargetMetric: fmt.Sprintf("Aumentar CTR para ≥ %.1f%%", fixedBenchmarks.CTR),
		})
	}

	if derived.ConversionRate < fixedBenchmarks.ConversionRate*0.8 {
		plan = append(plan, domain.StrategicAction{
			Priority: "Alta",
			Action:   "Melhorar Taxa de Conversão",
			Tasks: []string{
				"Otimizar landing page (velocidade, design, CTA)",
				"Implementar pop-ups inteligentes",
				"Simplificar formulários de conversão",
			},
			Timeframe:    "5 dias",
			TargetMetric: fmt.Sprintf("Aumentar conversão para ≥ %.1f%%", fixedBenchmarks.ConversionRate),
		})
	}

	if temporal != nil && temporal.MeanFrequency > quickFrequencyMax {
		plan = append(plan, domain.StrategicAction{
			Priority: "Média",
			Action:   "Reduzir Saturação",
			Tasks: []string{
				"Atualizar criativos principais",
				"Expandir público-alvo",
				"Ajustar orçamento por horário",
			},
			Timeframe:    "2 dias",
			TargetMetric: "Reduzir frequência para ≤ 3x",
		})
	}

	if len(plan) == 0 {
		plan = append(plan, domain.StrategicAction{
			Priority: "Otimização",
			Action:   "Escalonar Performance",
			Tasks: []string{
				"Aumentar orçamento em 20% para melhores performers",
				"Criar públicos lookalike baseados em convertidos",
				"Testar novos formatos criativos",
			},
			Timeframe:    "Contínuo",
			TargetMetric: "Manter ROAS ≥ 2.0",
		})
	}

	return plan
}

// buildProjections projeta os resultados dos próximos 7 dias em três cenários
// a partir dos totais do período analisado
func buildProjections(insights *domain.InsightRecord) []domain.ProjectionScenario {
	projections := make([]domain.ProjectionScenario, 0, len(projectionScenarios))

	for _, scenario := range projectionScenarios {
		impressions := float64(insights.Impressions) * scenario.impressions
		conversions := float64(insights.Conversions) * scenario.conversions
		spend := insights.Spend * scenario.spend

		roi := 0.0
		if spend > 0 {
			roi = (conversions * 100) / spend
		}

		projections = append(projections, domain.ProjectionScenario{
			Name:        scenario.name,
			Impressions: utils.RoundWithTwoDecimalPlace(impressions),
			Conversions: utils.RoundWithTwoDecimalPlace(conversions),
			Spend:       utils.RoundWithTwoDecimalPlace(spend),
			ExpectedROI: utils.RoundWithTwoDecimalPlace(roi),
		})
	}

	return projections
}
