package analyzing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-analyzer-api/internal/config"
	"github.com/vfg2006/ad-analyzer-api/internal/domain"
	"github.com/vfg2006/ad-analyzer-api/pkg/log"
)

// MessageWithinBenchmarks é a mensagem exibida quando nenhuma recomendação é
// emitida. Lista vazia é sucesso, nunca um estado de erro.
const MessageWithinBenchmarks = "Seu anúncio está performando dentro ou acima dos benchmarks!"

// Service implementa a interface AdAnalyzer. O serviço não guarda estado entre
// chamadas e não modifica o bundle recebido, então invocações concorrentes
// para anúncios diferentes são seguras.
type Service struct {
	cfg *config.Config
}

// NewService cria uma nova instância do motor de análise
func NewService(cfg *config.Config) AdAnalyzer {
	return &Service{cfg: cfg}
}

// Analyze executa o pipeline completo de análise: métricas derivadas, resumos
// segmentado e temporal, bateria de regras, diagnóstico rápido, priorização e
// análise estratégica. Seções opcionais ausentes apenas desativam as regras
// correspondentes.
func (s *Service) Analyze(ctx context.Context, bundle *domain.AnalysisBundle) (*domain.AnalysisResult, error) {
	if bundle == nil {
		return nil, errors.New("bundle de análise não informado")
	}

	logger := log.ForContext(ctx)

	derived := bundle.Insights.Derive()

	// Cópia da série temporal para preencher os campos derivados sem
	// modificar a entrada do chamador
	var series domain.TemporalSeries
	if bundle.HasTemporal() {
		series = make(domain.TemporalSeries, len(bundle.Temporal))
		copy(series, bundle.Temporal)
		series.ComputeDerived()
	}

	var segments *domain.SegmentSummary
	if bundle.HasDemographics() {
		summary, err := BuildSegmentSummary(bundle.Demographics)
		if err != nil && !errors.Is(err, ErrInsufficientData) {
			return nil, errors.Wrap(err, "erro na análise demográfica")
		}
		segments = summary
	}

	var temporal *domain.TemporalSummary
	if len(series) > 0 {
		summary, err := BuildTemporalSummary(series, s.cfg.Engine.GrowthWindowDays)
		if err != nil && !errors.Is(err, ErrInsufficientData) {
			return nil, errors.Wrap(err, "erro na análise temporal")
		}
		temporal = summary
	}

	rc := &ruleContext{
		cfg:      s.cfg.Engine,
		ad:       &bundle.Ad,
		insights: &bundle.Insights,
		derived:  derived,
		segments: segments,
		temporal: temporal,
	}

	recommendations := Prioritize(runRules(rc))

	result := &domain.AnalysisResult{
		Recommendations:  recommendations,
		PerformanceNotes: GeneratePerformanceNotes(&bundle.Insights, series),
		ActionPlan:       BuildActionPlan(recommendations),
		Benchmarks:       BuildBenchmarkComparison(derived),
		Derived:          derived,
		Segments:         segments,
		Temporal:         temporal,
		Strategic:        GenerateStrategicAnalysis(&bundle.Ad, &bundle.Insights, derived, segments, temporal),
	}

	if len(recommendations) == 0 {
		result.Message = MessageWithinBenchmarks
	}

	logger.WithFields(log.Fields{
		"ad_id":           bundle.Ad.AdID,
		"recommendations": len(recommendations),
		"notes":           len(result.PerformanceNotes),
		"has_temporal":    temporal != nil,
		"has_segments":    segments != nil,
	}).Info("analysis: ad analysis completed")

	return result, nil
}
