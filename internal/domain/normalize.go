package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/vfg2006/ad-analyzer-api/pkg/utils"
)

// A API de insights do Meta devolve métricas numéricas como strings
// ("12500", "0.0052") e omite campos sem dados. A normalização abaixo
// aceita qualquer representação e aplica o valor padrão zero em vez de
// falhar a decodificação.

const (
	actionCountPrefix = "action_"
	actionValuePrefix = "action_value_"
)

func (r *InsightRecord) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Impressions = utils.ToInt(raw["impressions"], 0)
	r.Reach = utils.ToInt(raw["reach"], 0)
	r.Frequency = utils.ToFloat(raw["frequency"], 0)
	r.Spend = utils.ToFloat(raw["spend"], 0)
	r.Clicks = utils.ToInt(raw["clicks"], 0)
	r.Conversions = utils.ToInt(raw["conversions"], 0)
	r.CTR = utils.ToFloat(raw["ctr"], 0)
	r.CPM = utils.ToFloat(raw["cpm"], 0)
	r.CostPerConversion = utils.ToFloat(raw["cost_per_conversion"], 0)
	r.Actions = collectActions(raw)

	return nil
}

// collectActions agrupa as chaves abertas action_<tipo> e action_value_<tipo>
// em um mapa de tipo de ação para contagem e valor monetário
func collectActions(raw map[string]any) map[string]ActionStat {
	var actions map[string]ActionStat

	put := func(name string, update func(stat *ActionStat)) {
		if actions == nil {
			actions = map[string]ActionStat{}
		}

		stat := actions[name]
		update(&stat)
		actions[name] = stat
	}

	for key, value := range raw {
		switch {
		case strings.HasPrefix(key, actionValuePrefix):
			name := strings.TrimPrefix(key, actionValuePrefix)
			v := utils.ToFloat(value, 0)
			put(name, func(stat *ActionStat) { stat.Value = v })
		case strings.HasPrefix(key, actionCountPrefix):
			name := strings.TrimPrefix(key, actionCountPrefix)
			v := utils.ToFloat(value, 0)
			put(name, func(stat *ActionStat) { stat.Count = v })
		}
	}

	return actions
}

func (r *DemographicRow) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Age, _ = raw["age"].(string)
	r.Gender, _ = raw["gender"].(string)
	r.Impressions = utils.ToInt(raw["impressions"], 0)
	r.Reach = utils.ToInt(raw["reach"], 0)
	r.Clicks = utils.ToInt(raw["clicks"], 0)
	r.Spend = utils.ToFloat(raw["spend"], 0)
	r.Conversions = utils.ToInt(raw["conversions"], 0)
	r.CTR = utils.ToFloat(raw["ctr"], 0)
	r.CPM = utils.ToFloat(raw["cpm"], 0)

	return nil
}

func (r *TemporalRow) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if dateStr, ok := raw["date_start"].(string); ok && dateStr != "" {
		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return err
		}
		r.Date = date
	}

	r.Impressions = utils.ToInt(raw["impressions"], 0)
	r.Reach = utils.ToInt(raw["reach"], 0)
	r.Spend = utils.ToFloat(raw["spend"], 0)
	r.Clicks = utils.ToInt(raw["clicks"], 0)
	r.CTR = utils.ToFloat(raw["ctr"], 0)
	r.Frequency = utils.ToFloat(raw["frequency"], 0)
	r.CPM = utils.ToFloat(raw["cpm"], 0)
	r.Conversions = utils.ToInt(raw["conversions"], 0)
	r.CPC = utils.ToFloat(raw["cpc"], 0)
	r.ConversionRate = utils.ToFloat(raw["conversion_rate"], 0)
	r.CostPerConversion = utils.ToFloat(raw["cost_per_conversion"], 0)

	return nil
}
