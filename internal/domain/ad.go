package domain

// AdType representa o formato do criativo do anúncio
type AdType string

const (
	AdTypeImage    AdType = "image"
	AdTypeVideo    AdType = "video"
	AdTypeCarousel AdType = "carousel"
	AdTypeUnknown  AdType = "unknown"
)

// Creative contém os elementos criativos do anúncio usados na análise
type Creative struct {
	PrimaryText string `json:"primary_text"`
	CTA         string `json:"cta"`
	AdType      AdType `json:"ad_type"`
}

// AdContext contém os metadados descritivos do anúncio, da campanha e do
// conjunto de anúncios. É um snapshot imutável fornecido pelo coletor.
type AdContext struct {
	AdID   string `json:"ad_id"`
	AdName string `json:"ad_name"`
	Status string `json:"status"`

	CampaignID        string `json:"campaign_id"`
	CampaignName      string `json:"campaign_name"`
	CampaignObjective string `json:"campaign_objective"`

	AdsetID           string  `json:"adset_id"`
	AdsetBudget       float64 `json:"adset_budget"`
	AdsetOptimization string  `json:"adset_optimization"`

	BidAmount   float64 `json:"bid_amount"`
	BidStrategy string  `json:"bid_strategy"`
	Targeting   string  `json:"targeting"`

	Creative *Creative `json:"creative,omitempty"`
}

// CreativeType retorna o formato do criativo ou "unknown" quando não informado
func (a *AdContext) CreativeType() AdType {
	if a.Creative == nil || a.Creative.AdType == "" {
		return AdTypeUnknown
	}
	return a.Creative.AdType
}
