package domain

import "github.com/vfg2006/ad-analyzer-api/pkg/utils"

// ActionStat agrega contagem e valor monetário de uma ação específica do Meta
// (par de chaves action_<tipo> e action_value_<tipo> da API de insights)
type ActionStat struct {
	Count float64 `json:"count"`
	Value float64 `json:"value"`
}

// InsightRecord representa as métricas agregadas de um anúncio em um período.
// O CTR é armazenado como fração (0.005 = 0,5%); a conversão para percentual
// acontece apenas no momento da comparação com benchmarks.
type InsightRecord struct {
	Impressions       int                   `json:"impressions"`
	Reach             int                   `json:"reach"`
	Frequency         float64               `json:"frequency"`
	Spend             float64               `json:"spend"`
	Clicks            int                   `json:"clicks"`
	Conversions       int                   `json:"conversions"`
	CTR               float64               `json:"ctr"`
	CPM               float64               `json:"cpm"`
	CostPerConversion float64               `json:"cost_per_conversion"`
	Actions           map[string]ActionStat `json:"actions,omitempty"`
}

// CTRPercent retorna o CTR em escala percentual para comparação com benchmarks
func (r *InsightRecord) CTRPercent() float64 {
	return r.CTR * 100
}

// DerivedMetrics contém as métricas calculadas a partir dos contadores brutos.
// Taxas em percentual, custos na mesma moeda do investimento.
type DerivedMetrics struct {
	CTR               float64 `json:"ctr"`
	ConversionRate    float64 `json:"conversion_rate"`
	CostPerConversion float64 `json:"cost_per_conversion"`
	CPM               float64 `json:"cpm"`
	CPC               float64 `json:"cpc"`
}

// Derive calcula as métricas derivadas do registro aplicando as proteções
// contra divisão por zero
func (r *InsightRecord) Derive() DerivedMetrics {
	return DerivedMetrics{
		CTR:               utils.RoundWithTwoDecimalPlace(r.CTRPercent()),
		ConversionRate:    utils.RoundWithTwoDecimalPlace(ConversionRate(r.Conversions, r.Clicks)),
		CostPerConversion: utils.RoundWithTwoDecimalPlace(CostPerConversion(r.Spend, r.Conversions)),
		CPM:               utils.RoundWithTwoDecimalPlace(CPM(r.Spend, r.Impressions)),
		CPC:               utils.RoundWithTwoDecimalPlace(CPC(r.Spend, r.Clicks)),
	}
}
