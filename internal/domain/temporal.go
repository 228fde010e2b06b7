package domain

import "time"

// TemporalRow representa as métricas de um único dia de veiculação.
// Os campos derivados (CPC, ConversionRate e CostPerConversion) são
// preenchidos por ComputeDerived a partir dos contadores brutos.
type TemporalRow struct {
	Date        time.Time `json:"date_start"`
	Impressions int       `json:"impressions"`
	Reach       int       `json:"reach"`
	Spend       float64   `json:"spend"`
	Clicks      int       `json:"clicks"`
	CTR         float64   `json:"ctr"`
	Frequency   float64   `json:"frequency"`
	CPM         float64   `json:"cpm"`
	Conversions int       `json:"conversions"`

	CPC               float64 `json:"cpc"`
	ConversionRate    float64 `json:"conversion_rate"`
	CostPerConversion float64 `json:"cost_per_conversion"`
}

// ComputeDerived preenche os campos derivados da linha diária com as mesmas
// proteções de divisão por zero usadas no nível agregado
func (r *TemporalRow) ComputeDerived() {
	r.CPC = CPC(r.Spend, r.Clicks)
	r.ConversionRate = ConversionRate(r.Conversions, r.Clicks)
	r.CostPerConversion = CostPerConversion(r.Spend, r.Conversions)
}

// TemporalSeries é a sequência de linhas diárias, ascendente por data
type TemporalSeries []TemporalRow

// ComputeDerived preenche os campos derivados de todas as linhas da série
func (s TemporalSeries) ComputeDerived() {
	for i := range s {
		s[i].ComputeDerived()
	}
}
