package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDerivedMetricCalculations testa as proteções contra divisão por zero
// em todos os cálculos derivados
func TestDerivedMetricCalculations(t *testing.T) {
	tests := []struct {
		name     string
		validate func(t *testing.T)
	}{
		{
			name: "Taxa de conversão com cliques zero deve retornar zero",
			validate: func(t *testing.T) {
				assert.Equal(t, 0.0, ConversionRate(5, 0))
			},
		},
		{
			name: "Taxa de conversão normal em percentual",
			validate: func(t *testing.T) {
				assert.Equal(t, 10.0, ConversionRate(5, 50))
			},
		},
		{
			name: "CPA com conversões zero deve retornar zero",
			validate: func(t *testing.T) {
				assert.Equal(t, 0.0, CostPerConversion(500.0, 0))
			},
		},
		{
			name: "CPA normal",
			validate: func(t *testing.T) {
				assert.Equal(t, 100.0, CostPerConversion(500.0, 5))
			},
		},
		{
			name: "CPM com impressões zero deve retornar zero",
			validate: func(t *testing.T) {
				assert.Equal(t, 0.0, CPM(500.0, 0))
			},
		},
		{
			name: "CPM normal",
			validate: func(t *testing.T) {
				assert.Equal(t, 50.0, CPM(500.0, 10000))
			},
		},
		{
			name: "CPC com cliques zero deve retornar zero",
			validate: func(t *testing.T) {
				assert.Equal(t, 0.0, CPC(500.0, 0))
			},
		},
		{
			name: "CPC normal",
			validate: func(t *testing.T) {
				assert.Equal(t, 10.0, CPC(500.0, 50))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t)
		})
	}
}

// TestInsightRecordDerive testa o cálculo das métricas derivadas do registro
func TestInsightRecordDerive(t *testing.T) {
	tests := []struct {
		name     string
		record   InsightRecord
		expected DerivedMetrics
	}{
		{
			name: "Registro completo com arredondamento em duas casas",
			record: InsightRecord{
				Impressions: 10000,
				Clicks:      50,
				Conversions: 5,
				Spend:       500.0,
				CTR:         0.005,
			},
			expected: DerivedMetrics{
				CTR:               0.5,
				ConversionRate:    10.0,
				CostPerConversion: 100.0,
				CPM:               50.0,
				CPC:               10.0,
			},
		},
		{
			name:   "Registro zerado nunca gera erro de divisão",
			record: InsightRecord{},
			expected: DerivedMetrics{
				CTR:               0,
				ConversionRate:    0,
				CostPerConversion: 0,
				CPM:               0,
				CPC:               0,
			},
		},
		{
			name: "Valores fracionários arredondados em duas casas",
			record: InsightRecord{
				Impressions: 3000,
				Clicks:      7,
				Conversions: 3,
				Spend:       100.0,
				CTR:         0.002333,
			},
			expected: DerivedMetrics{
				CTR:               0.23,
				ConversionRate:    42.86,
				CostPerConversion: 33.33,
				CPM:               33.33,
				CPC:               14.29,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Derive())
		})
	}
}

// TestCTRPercent garante a conversão explícita de fração para percentual
func TestCTRPercent(t *testing.T) {
	record := InsightRecord{CTR: 0.005}
	assert.Equal(t, 0.5, record.CTRPercent())
}
