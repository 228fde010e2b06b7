package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-analyzer-api/internal/domain"
)

// TestBenchmarkForObjective testa a tabela de benchmarks por objetivo
func TestBenchmarkForObjective(t *testing.T) {
	tests := []struct {
		name      string
		objective string
		expected  float64
	}{
		{name: "Conversões", objective: "CONVERSIONS", expected: 25.00},
		{name: "Geração de leads", objective: "LEAD_GENERATION", expected: 15.00},
		{name: "Cliques no link", objective: "LINK_CLICKS", expected: 1.20},
		{name: "Alcance", objective: "REACH", expected: 5.00},
		{name: "Reconhecimento de marca", objective: "BRAND_AWARENESS", expected: 10.00},
		{name: "Visualizações de vídeo", objective: "VIDEO_VIEWS", expected: 0.50},
		{name: "Objetivo desconhecido usa o padrão", objective: "OUTRO", expected: 20.00},
		{name: "Objetivo vazio usa o padrão", objective: "", expected: 20.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BenchmarkForObjective(tt.objective))
		})
	}
}

// TestBuildBenchmarkComparison testa o painel de comparação com o setor
func TestBuildBenchmarkComparison(t *testing.T) {
	derived := domain.DerivedMetrics{
		CTR:               0.5,
		ConversionRate:    10.0,
		CostPerConversion: 100.0,
		CPM:               50.0,
		CPC:               10.0,
	}

	comparison := BuildBenchmarkComparison(derived)
	require.Len(t, comparison, 5)

	assert.Equal(t, domain.BenchmarkComparison{Metric: "ctr", Current: 0.5, Benchmark: 2.0}, comparison[0])
	assert.Equal(t, domain.BenchmarkComparison{Metric: "conversion_rate", Current: 10.0, Benchmark: 3.0}, comparison[1])
	assert.Equal(t, domain.BenchmarkComparison{Metric: "cost_per_conversion", Current: 100.0, Benchmark: 50.0}, comparison[2])
	assert.Equal(t, domain.BenchmarkComparison{Metric: "cpm", Current: 50.0, Benchmark: 10.0}, comparison[3])
	assert.Equal(t, domain.BenchmarkComparison{Metric: "cpc", Current: 10.0, Benchmark: 1.5}, comparison[4])
}
