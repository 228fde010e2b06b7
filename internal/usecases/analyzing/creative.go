package analyzing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ad-analyzer-api/internal/domain"
)

// Regras sobre os elementos criativos do anúncio. Só avaliam quando o coletor
// forneceu os metadados do criativo; a ausência deles apenas pula as regras.

// longPrimaryTextRule dispara quando o texto principal ultrapassa o limite de
// palavras recomendado para anúncios no feed
func longPrimaryTextRule(rc *ruleContext) *domain.Recommendation {
	creative := rc.ad.Creative
	if creative == nil || creative.PrimaryText == "" {
		return nil
	}

	wordCount := len(strings.Fields(creative.PrimaryText))
	if wordCount <= rc.cfg.LongTextWordLimit {
		return nil
	}

	return &domain.Recommendation{
		ID:       "creative-text-length",
		Title:    "Otimização de Texto",
		Severity: domain.SeverityMedium,
		Diagnosis: fmt.Sprintf(
			"Texto muito longo (%d palavras), ideal é <%d", wordCount, rc.cfg.LongTextWordLimit,
		),
		Actions: []string{
			"Reduzir texto em 30-40% mantendo a mensagem principal",
			"Testar versão com bullet points",
			"Mover detalhes para a descrição ou website",
		},
		ExpectedImpact: "Aumento de 10-20% no CTR",
		Timeframe:      "Imediato",
	}
}

// missingCTARule dispara quando o criativo não tem call-to-action definido
func missingCTARule(rc *ruleContext) *domain.Recommendation {
	creative := rc.ad.Creative
	if creative == nil || creative.CTA != "" {
		return nil
	}

	return &domain.Recommendation{
		ID:        "missing-cta",
		Title:     "Adicionar Call-to-Action",
		Severity:  domain.SeverityHigh,
		Diagnosis: "Nenhum CTA específico identificado no criativo",
		Actions: []string{
			"Adicionar CTA claro como 'Compre Agora' ou 'Saiba Mais'",
			"Posicionar CTA nos primeiros 3 segundos (vídeo) ou acima do scroll (imagem)",
			"Testar 2-3 variações de CTA",
		},
		ExpectedImpact: "Aumento de 15-25% nas conversões",
		Timeframe:      "1-3 dias",
	}
}
