package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-analyzer-api/internal/domain"
	"github.com/vfg2006/ad-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/ad-analyzer-api/pkg/log"
	"github.com/vfg2006/ad-analyzer-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Níveis de análise disponíveis via query param "tier"
const (
	TierQuick = "quick"
	TierDeep  = "deep"
	TierAll   = "all"
)

// AnalysisResponse é o envelope retornado pelo endpoint de análise
type AnalysisResponse struct {
	AnalysisID string                 `json:"analysis_id"`
	AdID       string                 `json:"ad_id"`
	Tier       string                 `json:"tier"`
	Result     *domain.AnalysisResult `json:"result"`
}

func AnalyzeAd(service analyzing.AdAnalyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		tier := r.URL.Query().Get("tier")
		if tier == "" {
			tier = TierAll
		}

		if tier != TierQuick && tier != TierDeep && tier != TierAll {
			logger.WithFields(log.Fields{
				"ad_id": id,
				"tier":  tier,
			}).Warn("analysis: invalid tier parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro tier inválido: use quick, deep ou all", nil)
			return
		}

		bundle := &domain.AnalysisBundle{}
		if err := json.NewDecoder(r.Body).Decode(bundle); err != nil {
			logger.WithFields(log.Fields{
				"ad_id": id,
				"error": err.Error(),
			}).Warn("analysis: invalid request body")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if bundle.Insights.Impressions == 0 && bundle.Insights.Clicks == 0 && bundle.Insights.Spend == 0 {
			logger.WithField("ad_id", id).Warn("analysis: missing insights in request body")

			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados de insights são obrigatórios", nil)
			return
		}

		if bundle.Ad.AdID == "" {
			bundle.Ad.AdID = id
		}

		logger.WithFields(log.Fields{
			"ad_id": id,
			"tier":  tier,
		}).Info("analysis: starting ad analysis")

		result, err := service.Analyze(r.Context(), bundle)
		if err != nil {
			logger.WithFields(log.Fields{
				"ad_id": id,
				"error": err.Error(),
			}).Error("analysis: failed to analyze ad")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a análise", nil)
			return
		}

		filterResultByTier(result, tier)

		analysisID, err := utils.GenerateID()
		if err != nil {
			logger.WithError(err).Warn("analysis: failed to generate analysis ID")
		}

		response := AnalysisResponse{
			AnalysisID: analysisID,
			AdID:       id,
			Tier:       tier,
			Result:     result,
		}

		logger.WithFields(log.Fields{
			"ad_id":           id,
			"analysis_id":     response.AnalysisID,
			"recommendations": len(result.Recommendations),
			"notes":           len(result.PerformanceNotes),
		}).Info("analysis: ad analysis completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")
		}
	})
}

// filterResultByTier remove do resultado as seções que não pertencem ao
// nível de análise solicitado
func filterResultByTier(result *domain.AnalysisResult, tier string) {
	switch tier {
	case TierQuick:
		result.Recommendations = nil
		result.ActionPlan = nil
		result.Strategic = nil
	case TierDeep:
		result.PerformanceNotes = nil
	}
}
