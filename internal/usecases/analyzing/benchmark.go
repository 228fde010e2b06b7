package analyzing

import "github.com/vfg2006/ad-analyzer-api/internal/domain"

// Benchmarks de custo por resultado do setor, por objetivo de campanha.
// Tabela fixa, somente leitura após a inicialização do processo.
var objectiveBenchmarks = map[string]float64{
	"CONVERSIONS":     25.00,
	"LEAD_GENERATION": 15.00,
	"LINK_CLICKS":     1.20,
	"REACH":           5.00,
	"BRAND_AWARENESS": 10.00,
	"VIDEO_VIEWS":     0.50,
}

// defaultObjectiveBenchmark é o CPA esperado para objetivos não mapeados
const defaultObjectiveBenchmark = 20.00

// BenchmarkForObjective retorna o custo por resultado esperado para o objetivo
// da campanha. Objetivos desconhecidos recebem o benchmark padrão, nunca erro.
func BenchmarkForObjective(objective string) float64 {
	if benchmark, ok := objectiveBenchmarks[objective]; ok {
		return benchmark
	}
	return defaultObjectiveBenchmark
}

// FixedBenchmarks é o conjunto fixo de benchmarks do setor usado no painel de
// comparação, independente do objetivo da campanha. Taxas em percentual.
type FixedBenchmarks struct {
	CTR               float64
	ConversionRate    float64
	CostPerConversion float64
	CPM               float64
	CPC               float64
}

var fixedBenchmarks = FixedBenchmarks{
	CTR:               2.0,
	ConversionRate:    3.0,
	CostPerConversion: 50.0,
	CPM:               10.0,
	CPC:               1.5,
}

// BuildBenchmarkComparison monta a comparação das métricas derivadas atuais
// com o conjunto fixo de benchmarks, na ordem de exibição do painel
func BuildBenchmarkComparison(derived domain.DerivedMetrics) []domain.BenchmarkComparison {
	return []domain.BenchmarkComparison{
		{Metric: "ctr", Current: derived.CTR, Benchmark: fixedBenchmarks.CTR},
		{Metric: "conversion_rate", Current: derived.ConversionRate, Benchmark: fixedBenchmarks.ConversionRate},
		{Metric: "cost_per_conversion", Current: derived.CostPerConversion, Benchmark: fixedBenchmarks.CostPerConversion},
		{Metric: "cpm", Current: derived.CPM, Benchmark: fixedBenchmarks.CPM},
		{Metric: "cpc", Current: derived.CPC, Benchmark: fixedBenchmarks.CPC},
	}
}
