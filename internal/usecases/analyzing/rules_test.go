package analyzing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-analyzer-api/internal/config"
	"github.com/vfg2006/ad-analyzer-api/internal/domain"
)

func defaultEngineConfig() config.Engine {
	return config.Engine{
		CTRBenchmark:        1.5,
		FrequencySaturation: 3.5,
		CPATolerance:        1.2,
		SegmentCPARatio:     1.5,
		GrowthWindowDays:    7,
		LongTextWordLimit:   125,
	}
}

func newRuleContext(insights domain.InsightRecord, ad domain.AdContext) *ruleContext {
	return &ruleContext{
		cfg:      defaultEngineConfig(),
		ad:       &ad,
		insights: &insights,
		derived:  insights.Derive(),
	}
}

// TestCTRUrgencyRule testa a regra de CTR abaixo de 70% do benchmark
func TestCTRUrgencyRule(t *testing.T) {
	tests := []struct {
		name     string
		insights domain.InsightRecord
		ad       domain.AdContext
		validate func(t *testing.T, rec *domain.Recommendation)
	}{
		{
			name:     "CTR muito baixo dispara com severidade alta",
			insights: domain.InsightRecord{Impressions: 10000, Clicks: 50, CTR: 0.005, Frequency: 2.0},
			ad:       domain.AdContext{},
			validate: func(t *testing.T, rec *domain.Recommendation) {
				require.NotNil(t, rec)
				assert.Equal(t, "ctr-urgency", rec.ID)
				assert.Equal(t, domain.SeverityHigh, rec.Severity)
				assert.Contains(t, rec.Diagnosis, "0.50%")
			},
		},
		{
			name:     "CTR no benchmark não dispara",
			insights: domain.InsightRecord{Impressions: 10000, Clicks: 150, CTR: 0.015},
			ad:       domain.AdContext{},
			validate: func(t *testing.T, rec *domain.Recommendation) {
				assert.Nil(t, rec)
			},
		},
		{
			name:     "Frequência alta aparece como causa diagnosticada",
			insights: domain.InsightRecord{Impressions: 10000, Clicks: 50, CTR: 0.005, Frequency: 4.0},
			ad:       domain.AdContext{},
			validate: func(t *testing.T, rec *domain.Recommendation) {
				require.NotNil(t, rec)
				assert.Contains(t, rec.Diagnosis, "Frequência alta")
			},
		},
		{
			name:     "CPM elevado aparece como causa diagnosticada",
			insights: domain.InsightRecord{Impressions: 10000, Clicks: 50, CTR: 0.005, CPM: 12.0},
			ad:       domain.AdContext{},
			validate: func(t *testing.T, rec *domain.Recommendation) {
				require.NotNil(t, rec)
				assert.Contains(t, rec.Diagnosis, "CPM elevado")
			},
		},
		{
			name:     "Sem causa identificada o diagnóstico aponta criativo ou segmentação",
			insights: domain.InsightRecord{Impressions: 10000, Clicks: 50, CTR: 0.005},
			ad:       domain.AdContext{},
			validate: func(t *testing.T, rec *domain.Recommendation) {
				require.NotNil(t, rec)
				assert.Contains(t, rec.Diagnosis, "criativo ou segmentação inadequados")
			},
		},
		{
			name:     "Ações dependem do formato do criativo",
			insights: domain.InsightRecord{Impressions: 10000, Clicks: 50, CTR: 0.005},
			ad:       domain.AdContext{Creative: &domain.Creative{AdType: domain.AdTypeVideo}},
			validate: func(t *testing.T, rec *domain.Recommendation) {
				require.NotNil(t, rec)
				assert.Contains(t, rec.Actions, "Adicionar legendas claras")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ctrUrgencyRule(newRuleContext(tt.insights, tt.ad)))
		})
	}
}

// TestCostPerConversionRule testa a regra de CPA acima do benchmark do objetivo
func TestCostPerConversionRule(t *testing.T) {
	tests := []struct {
		name     string
		insights domain.InsightRecord
		ad       domain.AdContext
		fires    bool
	}{
		{
			name:     "CPA acima da tolerância dispara",
			insights: domain.InsightRecord{Clicks: 50, Conversions: 5, Spend: 500.0},
			ad:       domain.AdContext{CampaignObjective: "CONVERSIONS"},
			fires:    true,
		},
		{
			name:     "CPA dentro da tolerância não dispara",
			insights: domain.InsightRecord{Clicks: 50, Conversions: 20, Spend: 500.0},
			ad:       domain.AdContext{CampaignObjective: "CONVERSIONS"},
			fires:    false,
		},
		{
			name:     "Sem conversões o CPA é zero e a regra não dispara",
			insights: domain.InsightRecord{Clicks: 0, Conversions: 0, Spend: 0},
			ad:       domain.AdContext{CampaignObjective: "CONVERSIONS"},
			fires:    false,
		},
		{
			name:     "Objetivo desconhecido usa o benchmark padrão",
			insights: domain.InsightRecord{Clicks: 50, Conversions: 5, Spend: 500.0},
			ad:       domain.AdContext{CampaignObjective: "ALGO_NOVO"},
			fires:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := costPerConversionRule(newRuleContext(tt.insights, tt.ad))

			if !tt.fires {
				assert.Nil(t, rec)
				return
			}

			require.NotNil(t, rec)
			assert.Equal(t, "cost-per-conversion", rec.ID)
			assert.Equal(t, domain.SeverityHigh, rec.Severity)
		})
	}
}

// TestFrequencySaturationRule testa a regra de saturação de público
func TestFrequencySaturationRule(t *testing.T) {
	t.Run("Frequência acima do limiar dispara", func(t *testing.T) {
		rc := newRuleContext(domain.InsightRecord{Frequency: 4.0}, domain.AdContext{})

		rec := frequencySaturationRule(rc)
		require.NotNil(t, rec)
		assert.Equal(t, "frequency-saturation", rec.ID)
		assert.Equal(t, domain.SeverityMedium, rec.Severity)
		assert.Len(t, rec.Actions, 3)
	})

	t.Run("Anúncio em vídeo recebe ações extras", func(t *testing.T) {
		ad := domain.AdContext{Creative: &domain.Creative{AdType: domain.AdTypeVideo}}
		rc := newRuleContext(domain.InsightRecord{Frequency: 4.0}, ad)

		rec := frequencySaturationRule(rc)
		require.NotNil(t, rec)
		assert.Len(t, rec.Actions, 5)
	})

	t.Run("Frequência no limiar não dispara", func(t *testing.T) {
		rc := newRuleContext(domain.InsightRecord{Frequency: 3.5}, domain.AdContext{})
		assert.Nil(t, frequencySaturationRule(rc))
	})
}

// TestDemographicSegmentationRule testa a regra de segmento com CPA destoante
func TestDemographicSegmentationRule(t *testing.T) {
	t.Run("Pior segmento acima do limiar dispara nomeando o segmento", func(t *testing.T) {
		insights := domain.InsightRecord{Clicks: 100, Conversions: 10, Spend: 500.0}

		demographics := domain.Demographics{
			{Age: "25-34", Gender: "male", Impressions: 1000, Clicks: 10, Spend: 100.0, Conversions: 1},
			{Age: "55-64", Gender: "female", Impressions: 1000, Clicks: 5, Spend: 200.0, Conversions: 1},
		}

		summary, err := BuildSegmentSummary(demographics)
		require.NoError(t, err)

		rc := newRuleContext(insights, domain.AdContext{})
		rc.segments = summary

		rec := demographicSegmentationRule(rc)
		require.NotNil(t, rec)
		assert.Equal(t, "demographic-targeting", rec.ID)
		assert.Contains(t, rec.Diagnosis, "female 55-64")
	})

	t.Run("Sem dados demográficos a regra é pulada", func(t *testing.T) {
		insights := domain.InsightRecord{Clicks: 100, Conversions: 10, Spend: 500.0}
		rc := newRuleContext(insights, domain.AdContext{})

		assert.Nil(t, demographicSegmentationRule(rc))
	})

	t.Run("CPA geral zero desativa a comparação", func(t *testing.T) {
		insights := domain.InsightRecord{Clicks: 100, Conversions: 0, Spend: 500.0}

		summary, err := BuildSegmentSummary(domain.Demographics{
			{Age: "25-34", Gender: "male", Impressions: 1000, Clicks: 10, Spend: 100.0, Conversions: 1},
		})
		require.NoError(t, err)

		rc := newRuleContext(insights, domain.AdContext{})
		rc.segments = summary

		assert.Nil(t, demographicSegmentationRule(rc))
	})
}

// TestSchedulingRule testa a recomendação de agendamento
func TestSchedulingRule(t *testing.T) {
	t.Run("Com resumo temporal sempre recomenda o melhor dia e horário", func(t *testing.T) {
		rc := newRuleContext(domain.InsightRecord{}, domain.AdContext{})
		rc.temporal = &domain.TemporalSummary{BestDayOfWeek: 2, BestHour: 18} // terça

		rec := schedulingRule(rc)
		require.NotNil(t, rec)
		assert.Equal(t, "scheduling", rec.ID)
		assert.Equal(t, domain.SeverityLow, rec.Severity)
		assert.Contains(t, rec.Diagnosis, "18h")
		assert.Contains(t, rec.Diagnosis, "terças-feiras")
	})

	t.Run("Sem série temporal a regra é pulada", func(t *testing.T) {
		rc := newRuleContext(domain.InsightRecord{}, domain.AdContext{})
		assert.Nil(t, schedulingRule(rc))
	})
}

// TestCreativeRules testa as regras sobre os elementos criativos
func TestCreativeRules(t *testing.T) {
	t.Run("Texto principal longo dispara otimização de texto", func(t *testing.T) {
		longText := strings.Repeat("palavra ", 130)
		ad := domain.AdContext{Creative: &domain.Creative{PrimaryText: longText, CTA: "Saiba Mais"}}

		rc := newRuleContext(domain.InsightRecord{}, ad)

		rec := longPrimaryTextRule(rc)
		require.NotNil(t, rec)
		assert.Equal(t, "creative-text-length", rec.ID)
		assert.Equal(t, domain.SeverityMedium, rec.Severity)
		assert.Contains(t, rec.Diagnosis, "130 palavras")
	})

	t.Run("Texto dentro do limite não dispara", func(t *testing.T) {
		ad := domain.AdContext{Creative: &domain.Creative{PrimaryText: "Oferta imperdível", CTA: "Compre"}}
		rc := newRuleContext(domain.InsightRecord{}, ad)

		assert.Nil(t, longPrimaryTextRule(rc))
	})

	t.Run("Criativo sem CTA dispara com severidade alta", func(t *testing.T) {
		ad := domain.AdContext{Creative: &domain.Creative{PrimaryText: "Oferta"}}
		rc := newRuleContext(domain.InsightRecord{}, ad)

		rec := missingCTARule(rc)
		require.NotNil(t, rec)
		assert.Equal(t, "missing-cta", rec.ID)
		assert.Equal(t, domain.SeverityHigh, rec.Severity)
	})

	t.Run("Sem metadados de criativo as regras são puladas", func(t *testing.T) {
		rc := newRuleContext(domain.InsightRecord{}, domain.AdContext{})

		assert.Nil(t, longPrimaryTextRule(rc))
		assert.Nil(t, missingCTARule(rc))
	})
}

// TestRunRulesOrder garante a ordem fixa de emissão da bateria
func TestRunRulesOrder(t *testing.T) {
	insights := domain.InsightRecord{
		Impressions: 10000,
		Clicks:      50,
		CTR:         0.005,
		Spend:       500.0,
		Conversions: 5,
		Frequency:   4.0,
		CPM:         12.0,
	}

	rc := newRuleContext(insights, domain.AdContext{CampaignObjective: "CONVERSIONS"})

	recommendations := runRules(rc)
	require.Len(t, recommendations, 3)

	assert.Equal(t, "ctr-urgency", recommendations[0].ID)
	assert.Equal(t, "cost-per-conversion", recommendations[1].ID)
	assert.Equal(t, "frequency-saturation", recommendations[2].ID)
}
