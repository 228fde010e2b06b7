package analyzing

import (
	"time"

	"github.com/vfg2006/ad-analyzer-api/internal/domain"
	"github.com/vfg2006/ad-analyzer-api/pkg/utils"
)

// Métricas da série temporal expostas no resumo de tendências
var temporalSummaryMetrics = []string{"impressions", "spend", "conversions", "ctr"}

// Métricas acompanhadas nas taxas de crescimento recente
var growthRateMetrics = []string{"impressions", "ctr", "conversions"}

// temporalMetricValue extrai o valor da métrica escolhida de uma linha diária
func temporalMetricValue(row domain.TemporalRow, metric string) float64 {
	switch metric {
	case "impressions":
		return float64(row.Impressions)
	case "reach":
		return float64(row.Reach)
	case "spend":
		return row.Spend
	case "clicks":
		return float64(row.Clicks)
	case "ctr":
		return row.CTR
	case "frequency":
		return row.Frequency
	case "cpm":
		return row.CPM
	case "conversions":
		return float64(row.Conversions)
	case "cpc":
		return row.CPC
	case "conversion_rate":
		return row.ConversionRate
	case "cost_per_conversion":
		return row.CostPerConversion
	default:
		return 0
	}
}

// BestDayOfWeek retorna o dia da semana com o maior total de conversões
func BestDayOfWeek(series domain.TemporalSeries) (time.Weekday, error) {
	if len(series) == 0 {
		return time.Sunday, ErrInsufficientData
	}

	totals := make(map[time.Weekday]int)
	for _, row := range series {
		totals[row.Date.Weekday()] += row.Conversions
	}

	// Percorre os dias em ordem fixa para desempate determinístico
	best := time.Sunday
	bestTotal := -1
	for day := time.Sunday; day <= time.Saturday; day++ {
		if total, ok := totals[day]; ok && total > bestTotal {
			best = day
			bestTotal = total
		}
	}

	return best, nil
}

// BestHour retorna a hora do dia com o maior total de conversões. Em séries
// diárias todas as linhas caem na hora zero, mas séries com granularidade
// horária são suportadas da mesma forma.
func BestHour(series domain.TemporalSeries) (int, error) {
	if len(series) == 0 {
		return 0, ErrInsufficientData
	}

	totals := make(map[int]int)
	for _, row := range series {
		totals[row.Date.Hour()] += row.Conversions
	}

	best := 0
	bestTotal := -1
	for hour := 0; hour < 24; hour++ {
		if total, ok := totals[hour]; ok && total > bestTotal {
			best = hour
			bestTotal = total
		}
	}

	return best, nil
}

// MeanFrequency calcula a média aritmética da frequência na série
func MeanFrequency(series domain.TemporalSeries) float64 {
	if len(series) == 0 {
		return 0
	}

	total := 0.0
	for _, row := range series {
		total += row.Frequency
	}

	return total / float64(len(series))
}

// RecentGrowthRate calcula a variação percentual média dia a dia da métrica
// nas últimas `window` linhas da série. Séries menores usam o que houver;
// série vazia retorna zero.
func RecentGrowthRate(series domain.TemporalSeries, metric string, window int) float64 {
	if len(series) == 0 || window <= 0 {
		return 0
	}

	start := len(series) - window
	if start < 0 {
		start = 0
	}
	recent := series[start:]

	var total float64
	var count int

	for i := 1; i < len(recent); i++ {
		previous := temporalMetricValue(recent[i-1], metric)
		if previous == 0 {
			continue
		}

		current := temporalMetricValue(recent[i], metric)
		total += ((current - previous) / previous) * 100
		count++
	}

	if count == 0 {
		return 0
	}

	return total / float64(count)
}

// Extremes retorna o máximo e o mínimo da métrica na série com as datas em
// que ocorreram, para anotação dos gráficos de tendência
func Extremes(series domain.TemporalSeries, metric string) (domain.MetricExtreme, error) {
	if len(series) == 0 {
		return domain.MetricExtreme{}, ErrInsufficientData
	}

	extreme := domain.MetricExtreme{
		MaxDate:  series[0].Date,
		MaxValue: temporalMetricValue(series[0], metric),
		MinDate:  series[0].Date,
		MinValue: temporalMetricValue(series[0], metric),
	}

	for _, row := range series[1:] {
		value := temporalMetricValue(row, metric)
		if value > extreme.MaxValue {
			extreme.MaxValue = value
			extreme.MaxDate = row.Date
		}
		if value < extreme.MinValue {
			extreme.MinValue = value
			extreme.MinDate = row.Date
		}
	}

	return extreme, nil
}

// BuildTemporalSummary monta o resumo temporal completo do anúncio. A série
// deve estar ascendente por data e com os campos derivados preenchidos.
func BuildTemporalSummary(series domain.TemporalSeries, growthWindow int) (*domain.TemporalSummary, error) {
	if len(series) == 0 {
		return nil, ErrInsufficientData
	}

	bestDay, err := BestDayOfWeek(series)
	if err != nil {
		return nil, err
	}

	bestHour, err := BestHour(series)
	if err != nil {
		return nil, err
	}

	summary := &domain.TemporalSummary{
		BestDayOfWeek: bestDay,
		BestHour:      bestHour,
		MeanFrequency: utils.RoundWithTwoDecimalPlace(MeanFrequency(series)),
		GrowthRates:   make(map[string]float64, len(growthRateMetrics)),
		Extremes:      make(map[string]domain.MetricExtreme, len(temporalSummaryMetrics)),
	}

	for _, metric := range growthRateMetrics {
		summary.GrowthRates[metric] = utils.RoundWithTwoDecimalPlace(
			RecentGrowthRate(series, metric, growthWindow),
		)
	}

	for _, metric := range temporalSummaryMetrics {
		if extreme, err := Extremes(series, metric); err == nil {
			summary.Extremes[metric] = extreme
		}
	}

	return summary, nil
}

// weekdayPT traduz o dia da semana para exibição nas recomendações
func weekdayPT(day time.Weekday) string {
	names := map[time.Weekday]string{
		time.Sunday:    "domingos",
		time.Monday:    "segundas-feiras",
		time.Tuesday:   "terças-feiras",
		time.Wednesday: "quartas-feiras",
		time.Thursday:  "quintas-feiras",
		time.Friday:    "sextas-feiras",
		time.Saturday:  "sábados",
	}
	return names[day]
}
