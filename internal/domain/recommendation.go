package domain

import "strings"

// Severity é o nível de urgência atribuído pelo motor de recomendações
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank retorna a ordem de prioridade da severidade para ordenação
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// Label retorna o rótulo da severidade para exibição no plano de ação
func (s Severity) Label() string {
	switch s {
	case SeverityHigh:
		return "Alta"
	case SeverityMedium:
		return "Média"
	default:
		return "Baixa"
	}
}

// Recommendation é uma recomendação de otimização produzida pelo motor de
// análise. Imutável após a criação; a primeira ação da lista é tratada como a
// ação principal na extração do plano de ação.
type Recommendation struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Diagnosis      string   `json:"diagnosis"`
	Actions        []string `json:"actions"`
	ExpectedImpact string   `json:"expected_impact"`
	Timeframe      string   `json:"timeframe"`
}

// NoteKind classifica as notas do diagnóstico rápido de performance
type NoteKind string

const (
	NoteAlert    NoteKind = "alert"
	NoteWarning  NoteKind = "warning"
	NotePositive NoteKind = "positive"
)

// PerformanceNote é uma observação do diagnóstico rápido, o primeiro nível de
// análise mantido separado do motor de recomendações detalhadas
type PerformanceNote struct {
	Kind    NoteKind `json:"kind"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Actions []string `json:"actions"`
}

// ActionPlanEntry é uma linha do plano de ação executivo extraído das
// recomendações priorizadas
type ActionPlanEntry struct {
	Priority  string `json:"priority"`
	Action    string `json:"action"`
	Owner     string `json:"owner"`
	Timeframe string `json:"timeframe"`
}

// Equipes responsáveis pelo plano de ação
const (
	OwnerCreativeTeam   = "Equipe de Criativos"
	OwnerTrafficManager = "Gestor de Tráfego"
)

// OwnerForRecommendation decide a equipe responsável por uma recomendação a
// partir do título: trabalhos de criativo vão para a equipe de criativos
func OwnerForRecommendation(rec Recommendation) string {
	if strings.Contains(strings.ToLower(rec.Title), "criativo") {
		return OwnerCreativeTeam
	}
	return OwnerTrafficManager
}
