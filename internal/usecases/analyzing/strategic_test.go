package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-analyzer-api/internal/domain"
)

// TestBuildStrengths testa a identificação de pontos fortes
func TestBuildStrengths(t *testing.T) {
	tests := []struct {
		name     string
		derived  domain.DerivedMetrics
		segments *domain.SegmentSummary
		validate func(t *testing.T, strengths []string)
	}{
		{
			name:    "CTR bem acima da média é ponto forte",
			derived: domain.DerivedMetrics{CTR: 3.0},
			validate: func(t *testing.T, strengths []string) {
				require.Len(t, strengths, 1)
				assert.Contains(t, strengths[0], "CTR excelente")
			},
		},
		{
			name:    "Custo por conversão baixo é ponto forte",
			derived: domain.DerivedMetrics{CostPerConversion: 30.0},
			validate: func(t *testing.T, strengths []string) {
				require.Len(t, strengths, 1)
				assert.Contains(t, strengths[0], "Custo por conversão baixo")
			},
		},
		{
			name:    "CPA zero não conta como custo baixo",
			derived: domain.DerivedMetrics{CostPerConversion: 0},
			validate: func(t *testing.T, strengths []string) {
				assert.Empty(t, strengths)
			},
		},
		{
			name:    "Segmento de alto desempenho é destacado",
			derived: domain.DerivedMetrics{},
			segments: &domain.SegmentSummary{
				Segments: []domain.SegmentMetrics{
					{Age: "25-34", Gender: "female", CTR: 3.5},
				},
			},
			validate: func(t *testing.T, strengths []string) {
				require.Len(t, strengths, 1)
				assert.Contains(t, strengths[0], "female 25-34")
			},
		},
		{
			name:    "Métricas medianas não geram pontos fortes",
			derived: domain.DerivedMetrics{CTR: 2.0, ConversionRate: 3.0, CostPerConversion: 45.0},
			validate: func(t *testing.T, strengths []string) {
				assert.Empty(t, strengths)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, buildStrengths(tt.derived, tt.segments))
		})
	}
}

// TestBuildImprovements testa a identificação de oportunidades de melhoria
func TestBuildImprovements(t *testing.T) {
	t.Run("Métricas abaixo do benchmark geram melhorias", func(t *testing.T) {
		derived := domain.DerivedMetrics{CTR: 0.5, ConversionRate: 1.0, CostPerConversion: 100.0}

		improvements := buildImprovements(derived, nil)
		require.Len(t, improvements, 3)
		assert.Contains(t, improvements[0], "CTR baixo")
		assert.Contains(t, improvements[1], "Taxa de conversão baixa")
		assert.Contains(t, improvements[2], "Custo por conversão alto")
	})

	t.Run("Frequência média alta entra como risco de saturação", func(t *testing.T) {
		derived := domain.DerivedMetrics{CTR: 2.0, ConversionRate: 3.0}
		temporal := &domain.TemporalSummary{MeanFrequency: 4.0}

		improvements := buildImprovements(derived, temporal)
		require.Len(t, improvements, 1)
		assert.Contains(t, improvements[0], "Frequência alta")
	})
}

// TestObjectiveAdvice testa as orientações por objetivo de campanha
func TestObjectiveAdvice(t *testing.T) {
	t.Run("Objetivo de conversão", func(t *testing.T) {
		advice := objectiveAdvice("OUTCOME_CONVERSIONS")
		require.Len(t, advice, 3)
		assert.Contains(t, advice[0], "CTAs")
	})

	t.Run("Objetivo de reconhecimento", func(t *testing.T) {
		advice := objectiveAdvice("BRAND_AWARENESS")
		require.Len(t, advice, 3)
		assert.Contains(t, advice[0], "alcance")
	})

	t.Run("Objetivo não reconhecido recebe orientações genéricas", func(t *testing.T) {
		advice := objectiveAdvice("LINK_CLICKS")
		require.Len(t, advice, 3)
		assert.Contains(t, advice[0], "variações de criativos")
	})
}

// TestBuildStrategicPlan testa o plano de ação estratégico
func TestBuildStrategicPlan(t *testing.T) {
	t.Run("Problemas críticos entram no plano", func(t *testing.T) {
		derived := domain.DerivedMetrics{CTR: 0.5, ConversionRate: 1.0}
		temporal := &domain.TemporalSummary{MeanFrequency: 4.0}

		plan := buildStrategicPlan(derived, temporal)
		require.Len(t, plan, 3)
		assert.Equal(t, "Otimizar CTR", plan[0].Action)
		assert.Equal(t, "Melhorar Taxa de Conversão", plan[1].Action)
		assert.Equal(t, "Reduzir Saturação", plan[2].Action)
	})

	t.Run("Sem problemas críticos o plano padrão é escalonar", func(t *testing.T) {
		derived := domain.DerivedMetrics{CTR: 2.5, ConversionRate: 4.0}

		plan := buildStrategicPlan(derived, nil)
		require.Len(t, plan, 1)
		assert.Equal(t, "Escalonar Performance", plan[0].Action)
	})
}

// TestGenerateStrategicAnalysis testa a montagem completa, incluindo projeções
func TestGenerateStrategicAnalysis(t *testing.T) {
	ad := domain.AdContext{CampaignObjective: "CONVERSIONS"}
	insights := domain.InsightRecord{Impressions: 10000, Conversions: 10, Spend: 500.0}
	derived := domain.DerivedMetrics{CTR: 2.5}

	t.Run("Com série temporal inclui os três cenários de projeção", func(t *testing.T) {
		temporal := &domain.TemporalSummary{MeanFrequency: 2.0}

		analysis := GenerateStrategicAnalysis(&ad, &insights, derived, nil, temporal)
		require.NotNil(t, analysis)
		require.Len(t, analysis.Projections, 3)

		conservative := analysis.Projections[0]
		assert.Equal(t, "Conservador", conservative.Name)
		assert.Equal(t, 9000.0, conservative.Impressions)
		assert.Equal(t, 9.0, conservative.Conversions)
		assert.Equal(t, 450.0, conservative.Spend)
		assert.Equal(t, 2.0, conservative.ExpectedROI)

		assert.Equal(t, "Otimista", analysis.Projections[1].Name)
		assert.Equal(t, "Pessimista", analysis.Projections[2].Name)
	})

	t.Run("Sem série temporal não há projeções", func(t *testing.T) {
		analysis := GenerateStrategicAnalysis(&ad, &insights, derived, nil, nil)
		require.NotNil(t, analysis)
		assert.Empty(t, analysis.Projections)
	})

	t.Run("Projeção com investimento zero tem ROI zero", func(t *testing.T) {
		zeroSpend := domain.InsightRecord{Impressions: 1000, Conversions: 5}
		temporal := &domain.TemporalSummary{}

		analysis := GenerateStrategicAnalysis(&ad, &zeroSpend, derived, nil, temporal)
		require.Len(t, analysis.Projections, 3)

		for _, projection := range analysis.Projections {
			assert.Equal(t, 0.0, projection.ExpectedROI)
		}
	})
}
