package analyzing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ad-analyzer-api/internal/config"
	"github.com/vfg2006/ad-analyzer-api/internal/domain"
)

// ruleContext é o contexto compartilhado, somente leitura, avaliado por todas
// as regras da bateria. As métricas derivadas são pré-calculadas uma única vez
// para que todas as regras enxerguem os mesmos valores.
type ruleContext struct {
	cfg      config.Engine
	ad       *domain.AdContext
	insights *domain.InsightRecord
	derived  domain.DerivedMetrics
	segments *domain.SegmentSummary
	temporal *domain.TemporalSummary
}

// rule é uma regra de diagnóstico independente: recebe o contexto e emite no
// máximo uma recomendação. Contexto opcional ausente apenas desativa a regra.
type rule func(rc *ruleContext) *domain.Recommendation

// optimizationRules é a bateria de regras em ordem fixa de avaliação. A ordem
// de emissão só importa como desempate na priorização final.
var optimizationRules = []rule{
	ctrUrgencyRule,
	costPerConversionRule,
	frequencySaturationRule,
	demographicSegmentationRule,
	schedulingRule,
	longPrimaryTextRule,
	missingCTARule,
}

// runRules avalia a bateria completa e coleta as recomendações emitidas
func runRules(rc *ruleContext) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(optimizationRules))

	for _, evaluate := range optimizationRules {
		if rec := evaluate(rc); rec != nil {
			recommendations = append(recommendations, *rec)
		}
	}

	return recommendations
}

// ctrUrgencyRule dispara quando o CTR fica abaixo de 70% do benchmark do
// setor, citando frequência e CPM elevados como possíveis causas
func ctrUrgencyRule(rc *ruleContext) *domain.Recommendation {
	ctr := rc.derived.CTR
	if ctr >= rc.cfg.CTRBenchmark*0.7 {
		return nil
	}

	var causes []string
	if rc.insights.Frequency > 3 {
		causes = append(causes, fmt.Sprintf(
			"Frequência alta (%.1fx) indicando possível fadiga criativa", rc.insights.Frequency,
		))
	}
	if rc.insights.CPM > rc.cfg.CTRBenchmark*1.3 {
		causes = append(causes, fmt.Sprintf(
			"CPM elevado (R$%.2f) sugerindo público competitivo", rc.insights.CPM,
		))
	}

	diagnosedCauses := "criativo ou segmentação inadequados"
	if len(causes) > 0 {
		diagnosedCauses = strings.Join(causes, ", ")
	}

	creativeType := rc.ad.CreativeType()

	textAction := "Simplificar mensagem"
	switch creativeType {
	case domain.AdTypeImage, domain.AdTypeCarousel:
		textAction = "Reduzir texto principal para menos de 125 caracteres"
	case domain.AdTypeVideo:
		textAction = "Adicionar legendas claras"
	}

	targeting := rc.ad.Targeting
	if targeting == "" {
		targeting = "não especificado"
	}

	return &domain.Recommendation{
		ID:       "ctr-urgency",
		Title:    "Otimização de CTR Urgente",
		Severity: domain.SeverityHigh,
		Diagnosis: fmt.Sprintf(
			"CTR muito baixo (%.2f%% vs benchmark %.2f%%). Possíveis causas: %s",
			ctr, rc.cfg.CTRBenchmark, diagnosedCauses,
		),
		Actions: []string{
			fmt.Sprintf("Testar 3 novos criativos de %s com abordagens diferentes", creativeType),
			textAction,
			fmt.Sprintf("Ajustar público-alvo (atual: %s)", targeting),
			"Implementar rodízio de criativos a cada 3 dias",
		},
		ExpectedImpact: "Aumento de 30-50% no CTR",
		Timeframe:      "3-5 dias para ver resultados",
	}
}

// costPerConversionRule dispara quando o CPA ultrapassa a tolerância sobre o
// benchmark do objetivo da campanha. Exige CPA e taxa de conversão positivos:
// anúncio sem conversão registrada não tem custo por conversão a reduzir.
func costPerConversionRule(rc *ruleContext) *domain.Recommendation {
	costPerConversion := rc.derived.CostPerConversion
	if costPerConversion <= 0 || rc.derived.ConversionRate <= 0 {
		return nil
	}

	benchmark := BenchmarkForObjective(rc.ad.CampaignObjective)
	if costPerConversion <= benchmark*rc.cfg.CPATolerance {
		return nil
	}

	bidStrategy := rc.ad.BidStrategy
	if bidStrategy == "" {
		bidStrategy = "não especificado"
	}

	return &domain.Recommendation{
		ID:       "cost-per-conversion",
		Title:    "Redução de Custo por Conversão",
		Severity: domain.SeverityHigh,
		Diagnosis: fmt.Sprintf(
			"Custo por conversão (R$%.2f) está %.0f%% acima do benchmark (%.2f)",
			costPerConversion, ((costPerConversion/benchmark)-1)*100, benchmark,
		),
		Actions: []string{
			"Otimizar página de destino para melhorar taxa de conversão",
			"Testar novos CTAs no anúncio e na landing page",
			fmt.Sprintf("Ajustar bid strategy (atual: %s)", bidStrategy),
			"Segmentar público semelhante a converters (lookalike)",
		},
		ExpectedImpact: "Redução de 20-35% no CPA",
		Timeframe:      "1-2 semanas para otimização completa",
	}
}

// frequencySaturationRule dispara quando a frequência agregada indica
// saturação do público, com ações extras para anúncios em vídeo
func frequencySaturationRule(rc *ruleContext) *domain.Recommendation {
	frequency := rc.insights.Frequency
	if frequency <= rc.cfg.FrequencySaturation {
		return nil
	}

	actions := []string{
		"Pausar este anúncio por 7 dias",
		"Criar 2-3 variações com novos criativos",
		"Expandir público-alvo em 15-20%",
	}

	if rc.ad.CreativeType() == domain.AdTypeVideo {
		actions = append(actions,
			"Testar versão resumida do vídeo (15-30s)",
			"Adicionar hook nos primeiros 3 segundos",
		)
	}

	return &domain.Recommendation{
		ID:       "frequency-saturation",
		Title:    "Rotação de Criativos Necessária",
		Severity: domain.SeverityMedium,
		Diagnosis: fmt.Sprintf(
			"Frequência alta (%.1fx) indica saturação do público", frequency,
		),
		Actions:        actions,
		ExpectedImpact: "Melhoria de 15-25% nas taxas de engajamento",
		Timeframe:      "Imediato",
	}
}

// demographicSegmentationRule dispara quando o pior segmento demográfico tem
// CPA muito acima do CPA geral do anúncio. Exige dados demográficos agrupados
// e CPA geral positivo para a comparação fazer sentido.
func demographicSegmentationRule(rc *ruleContext) *domain.Recommendation {
	if rc.segments == nil || rc.derived.CostPerConversion <= 0 {
		return nil
	}

	// O pior segmento em custo é o de maior CPA
	worst, err := BestSegment(rc.segments.Segments, "cost_per_conversion")
	if err != nil {
		return nil
	}

	overall := rc.derived.CostPerConversion
	if worst.CostPerConversion <= overall*rc.cfg.SegmentCPARatio {
		return nil
	}

	segmentName := fmt.Sprintf("%s %s", worst.Gender, worst.Age)

	return &domain.Recommendation{
		ID:       "demographic-targeting",
		Title:    "Ajuste de Segmentação Demográfica",
		Severity: domain.SeverityMedium,
		Diagnosis: fmt.Sprintf(
			"Segmento %s tem CPA %.2f (%.0f%% acima da média)",
			segmentName, worst.CostPerConversion, (worst.CostPerConversion/overall-1)*100,
		),
		Actions: []string{
			fmt.Sprintf("Reduzir orçamento para %s em 30%%", segmentName),
			"Criar anúncio específico para este segmento",
			"Testar mensagens personalizadas para este grupo",
		},
		ExpectedImpact: "Redução de 15-20% no CPA geral",
		Timeframe:      "5-7 dias",
	}
}

// schedulingRule sempre dispara quando há série temporal, recomendando
// concentrar orçamento no melhor dia e horário
func schedulingRule(rc *ruleContext) *domain.Recommendation {
	if rc.temporal == nil {
		return nil
	}

	bestDay := weekdayPT(rc.temporal.BestDayOfWeek)
	bestHour := rc.temporal.BestHour

	return &domain.Recommendation{
		ID:       "scheduling",
		Title:    "Otimização de Agendamento",
		Severity: domain.SeverityLow,
		Diagnosis: fmt.Sprintf(
			"Melhor desempenho às %dh nas %s", bestHour, bestDay,
		),
		Actions: []string{
			fmt.Sprintf("Concentrar 40%% do orçamento nas %s", bestDay),
			fmt.Sprintf("Aumentar bids em 15%% entre %d-%dh", bestHour-1, bestHour+1),
			"Reduzir bids em 20% nos horários de pior desempenho",
		},
		ExpectedImpact: "Aumento de 10-15% na eficiência do orçamento",
		Timeframe:      "Próxima semana",
	}
}
