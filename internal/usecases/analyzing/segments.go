package analyzing

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-analyzer-api/internal/domain"
	"github.com/vfg2006/ad-analyzer-api/pkg/utils"
)

// ErrInsufficientData indica que não há dados suficientes para a análise
// segmentada. Não é um erro de processamento: o chamador apenas omite a seção.
var ErrInsufficientData = errors.New("dados insuficientes para análise segmentada")

// GroupSegments agrupa as linhas demográficas por (idade, gênero), soma os
// contadores e calcula as métricas derivadas de cada grupo. Linhas sem faixa
// etária válida são descartadas. O resultado é ordenado pela chave numérica da
// faixa etária e, dentro dela, pelo gênero, o que torna a enumeração (e os
// desempates de melhor/pior segmento) determinística.
func GroupSegments(demographics domain.Demographics) []domain.SegmentMetrics {
	type segmentKey struct {
		age    string
		gender string
	}

	groups := make(map[segmentKey]*domain.SegmentMetrics)

	for _, row := range demographics {
		if row.Age == "" || row.Age == "N/A" {
			continue
		}

		key := segmentKey{age: row.Age, gender: row.Gender}

		segment, exists := groups[key]
		if !exists {
			segment = &domain.SegmentMetrics{Age: row.Age, Gender: row.Gender}
			groups[key] = segment
		}

		segment.Impressions += row.Impressions
		segment.Clicks += row.Clicks
		segment.Conversions += row.Conversions
		segment.Spend += row.Spend
	}

	segments := make([]domain.SegmentMetrics, 0, len(groups))
	for _, segment := range groups {
		segment.CTR = ctr(segment.Clicks, segment.Impressions)
		segment.ConversionRate = domain.ConversionRate(segment.Conversions, segment.Clicks)
		segment.CostPerConversion = utils.RoundWithTwoDecimalPlace(
			domain.CostPerConversion(segment.Spend, segment.Conversions),
		)
		segments = append(segments, *segment)
	}

	sort.Slice(segments, func(i, j int) bool {
		keyI := domain.AgeSortKey(segments[i].Age)
		keyJ := domain.AgeSortKey(segments[j].Age)
		if keyI != keyJ {
			return keyI.Less(keyJ)
		}
		return segments[i].Gender < segments[j].Gender
	})

	return segments
}

// ctr calcula o CTR percentual de um grupo a partir dos contadores somados
func ctr(clicks, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return (float64(clicks) / float64(impressions)) * 100
}

// segmentMetricValue extrai o valor da métrica escolhida de um segmento
func segmentMetricValue(segment domain.SegmentMetrics, metric string) float64 {
	switch metric {
	case "impressions":
		return float64(segment.Impressions)
	case "clicks":
		return float64(segment.Clicks)
	case "conversions":
		return float64(segment.Conversions)
	case "spend":
		return segment.Spend
	case "ctr":
		return segment.CTR
	case "conversion_rate":
		return segment.ConversionRate
	case "cost_per_conversion":
		return segment.CostPerConversion
	default:
		return 0
	}
}

// BestSegment retorna o segmento com o maior valor da métrica escolhida.
// Em caso de empate vale o primeiro na ordem de enumeração dos grupos.
func BestSegment(segments []domain.SegmentMetrics, metric string) (domain.SegmentMetrics, error) {
	if len(segments) == 0 {
		return domain.SegmentMetrics{}, ErrInsufficientData
	}

	best := segments[0]
	for _, segment := range segments[1:] {
		if segmentMetricValue(segment, metric) > segmentMetricValue(best, metric) {
			best = segment
		}
	}

	return best, nil
}

// WorstSegment retorna o segmento com o menor valor da métrica escolhida.
// Em caso de empate vale o primeiro na ordem de enumeração dos grupos.
func WorstSegment(segments []domain.SegmentMetrics, metric string) (domain.SegmentMetrics, error) {
	if len(segments) == 0 {
		return domain.SegmentMetrics{}, ErrInsufficientData
	}

	worst := segments[0]
	for _, segment := range segments[1:] {
		if segmentMetricValue(segment, metric) < segmentMetricValue(worst, metric) {
			worst = segment
		}
	}

	return worst, nil
}

// BuildSegmentSummary monta o resumo demográfico com os segmentos agrupados e
// o melhor/pior segmento por taxa de conversão
func BuildSegmentSummary(demographics domain.Demographics) (*domain.SegmentSummary, error) {
	segments := GroupSegments(demographics)
	if len(segments) == 0 {
		return nil, ErrInsufficientData
	}

	summary := &domain.SegmentSummary{Segments: segments}

	if best, err := BestSegment(segments, "conversion_rate"); err == nil {
		summary.Best = &best
	}

	if worst, err := WorstSegment(segments, "conversion_rate"); err == nil {
		summary.Worst = &worst
	}

	return summary, nil
}
