package handler

import (
	"net/http"

	"github.com/vfg2006/ad-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/ad-analyzer-api/internal/usecases/analyzing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analysis(service analyzing.AdAnalyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads/:id/analysis",
			Method:  http.MethodPost,
			Handler: AnalyzeAd(service),
		},
	}
}
