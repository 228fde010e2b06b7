package analyzing

import (
	"fmt"

	"github.com/vfg2006/ad-analyzer-api/internal/domain"
)

// Limiares do diagnóstico rápido de performance. Este nível é intencionalmente
// mais tolerante que a bateria detalhada (CTR 0.8% contra 1.05%) e mantido
// separado dela: um é o alerta imediato do painel, o outro o diagnóstico
// profundo com plano de ação.
const (
	quickCTRFloor     = 0.8
	quickCTRCeiling   = 2.5
	quickCPACeiling   = 50.0
	quickFrequencyMax = 3.5
)

// GeneratePerformanceNotes produz o diagnóstico rápido do anúncio: alertas e
// destaques pontuais sem priorização, na ordem fixa de avaliação
func GeneratePerformanceNotes(insights *domain.InsightRecord, series domain.TemporalSeries) []domain.PerformanceNote {
	notes := make([]domain.PerformanceNote, 0, 4)

	ctr := insights.CTRPercent()

	if ctr < quickCTRFloor {
		notes = append(notes, domain.PerformanceNote{
			Kind:    domain.NoteAlert,
			Title:   "CTR Baixo",
			Message: fmt.Sprintf("CTR de %.2f%% está abaixo do benchmark recomendado (1-2%%)", ctr),
			Actions: []string{
				"Teste diferentes imagens/thumbnails no criativo",
				"Reduza o texto principal (ideal <125 caracteres)",
				"Posicione o CTA de forma mais destacada",
				"Teste diferentes cópias de texto",
			},
		})
	} else if ctr > quickCTRCeiling {
		notes = append(notes, domain.PerformanceNote{
			Kind:    domain.NotePositive,
			Title:   "CTR Alto",
			Message: fmt.Sprintf("Excelente CTR de %.2f%%!", ctr),
			Actions: []string{
				"Aumente o orçamento para escalar este desempenho",
				"Replique a estratégia para públicos similares",
				"Documente as características deste anúncio",
			},
		})
	}

	if insights.CostPerConversion > quickCPACeiling {
		notes = append(notes, domain.PerformanceNote{
			Kind:    domain.NoteAlert,
			Title:   "Custo Alto por Conversão",
			Message: fmt.Sprintf("R$%.2f por conversão (acima da média)", insights.CostPerConversion),
			Actions: []string{
				"Otimize a landing page (taxa de conversão pode estar baixa)",
				"Ajuste a segmentação para públicos mais qualificados",
				"Teste diferentes objetivos de campanha",
				"Verifique a qualidade do tráfego",
			},
		})
	}

	if len(series) > 0 {
		if frequency := MeanFrequency(series); frequency > quickFrequencyMax {
			notes = append(notes, domain.PerformanceNote{
				Kind:    domain.NoteWarning,
				Title:   "Frequência Elevada",
				Message: fmt.Sprintf("Média de %.1f impressões por usuário (risco de fadiga)", frequency),
				Actions: []string{
					"Reduza o orçamento ou pause temporariamente",
					"Atualize o criativo para evitar saturação",
					"Expanda o público-alvo",
				},
			})
		}
	}

	return notes
}
