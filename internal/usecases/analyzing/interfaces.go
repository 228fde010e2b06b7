package analyzing

import (
	"context"

	"github.com/vfg2006/ad-analyzer-api/internal/domain"
)

// AdAnalyzer define a interface do motor de análise de desempenho de anúncios
type AdAnalyzer interface {
	// Analyze processa o bundle completo de um anúncio e retorna as
	// recomendações priorizadas com os resumos derivados
	Analyze(ctx context.Context, bundle *domain.AnalysisBundle) (*domain.AnalysisResult, error)
}
