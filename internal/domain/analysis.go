package domain

import "time"

// AnalysisBundle é a entrada completa do motor de análise para um anúncio.
// TemporalSeries e Demographics são opcionais; a ausência deles apenas
// desativa as regras correspondentes.
type AnalysisBundle struct {
	Ad           AdContext      `json:"ad"`
	Insights     InsightRecord  `json:"insights"`
	Temporal     TemporalSeries `json:"temporal,omitempty"`
	Demographics Demographics   `json:"demographics,omitempty"`
}

// HasTemporal informa se o bundle possui série temporal para análise
func (b *AnalysisBundle) HasTemporal() bool {
	return len(b.Temporal) > 0
}

// HasDemographics informa se o bundle possui dados demográficos para análise
func (b *AnalysisBundle) HasDemographics() bool {
	return len(b.Demographics) > 0
}

// BenchmarkComparison compara o valor atual de uma métrica com o benchmark
// fixo do setor, para o painel de comparação renderizado pelo shell
type BenchmarkComparison struct {
	Metric    string  `json:"metric"`
	Current   float64 `json:"current"`
	Benchmark float64 `json:"benchmark"`
}

// SegmentMetrics contém as métricas agregadas de um segmento (idade, gênero)
type SegmentMetrics struct {
	Age               string  `json:"age"`
	Gender            string  `json:"gender"`
	Impressions       int     `json:"impressions"`
	Clicks            int     `json:"clicks"`
	Conversions       int     `json:"conversions"`
	Spend             float64 `json:"spend"`
	CTR               float64 `json:"ctr"`
	ConversionRate    float64 `json:"conversion_rate"`
	CostPerConversion float64 `json:"cost_per_conversion"`
}

// SegmentSummary é o resumo da análise demográfica: segmentos agrupados e
// ordenados pela faixa etária, com o melhor e o pior por taxa de conversão
type SegmentSummary struct {
	Segments []SegmentMetrics `json:"segments"`
	Best     *SegmentMetrics  `json:"best,omitempty"`
	Worst    *SegmentMetrics  `json:"worst,omitempty"`
}

// MetricExtreme registra o máximo e o mínimo de uma métrica na série temporal,
// com as datas em que ocorreram, para anotação dos gráficos de tendência
type MetricExtreme struct {
	MaxDate  time.Time `json:"max_date"`
	MaxValue float64   `json:"max_value"`
	MinDate  time.Time `json:"min_date"`
	MinValue float64   `json:"min_value"`
}

// TemporalSummary é o resumo da análise temporal do anúncio
type TemporalSummary struct {
	BestDayOfWeek time.Weekday             `json:"best_day_of_week"`
	BestHour      int                      `json:"best_hour"`
	MeanFrequency float64                  `json:"mean_frequency"`
	GrowthRates   map[string]float64       `json:"growth_rates"`
	Extremes      map[string]MetricExtreme `json:"extremes"`
}

// StrategicAction é uma entrada do plano de ação priorizado da análise
// estratégica, com as tarefas e a métrica esperada
type StrategicAction struct {
	Priority     string   `json:"priority"`
	Action       string   `json:"action"`
	Tasks        []string `json:"tasks"`
	Timeframe    string   `json:"timeframe"`
	TargetMetric string   `json:"target_metric"`
}

// ProjectionScenario é um cenário de projeção de resultados para 7 dias
type ProjectionScenario struct {
	Name        string  `json:"name"`
	Impressions float64 `json:"impressions"`
	Conversions float64 `json:"conversions"`
	Spend       float64 `json:"spend"`
	ExpectedROI float64 `json:"expected_roi"`
}

// StrategicAnalysis é a análise estratégica completa do anúncio
type StrategicAnalysis struct {
	Strengths       []string             `json:"strengths"`
	Improvements    []string             `json:"improvements"`
	ObjectiveAdvice []string             `json:"objective_advice"`
	ActionPlan      []StrategicAction    `json:"action_plan"`
	Projections     []ProjectionScenario `json:"projections,omitempty"`
}

// AnalysisResult é a saída completa do motor de análise
type AnalysisResult struct {
	Recommendations  []Recommendation      `json:"recommendations"`
	PerformanceNotes []PerformanceNote     `json:"performance_notes"`
	ActionPlan       []ActionPlanEntry     `json:"action_plan"`
	Benchmarks       []BenchmarkComparison `json:"benchmarks"`
	Derived          DerivedMetrics        `json:"derived_metrics"`
	Segments         *SegmentSummary       `json:"segments,omitempty"`
	Temporal         *TemporalSummary      `json:"temporal,omitempty"`
	Strategic        *StrategicAnalysis    `json:"strategic,omitempty"`
	Message          string                `json:"message,omitempty"`
}
