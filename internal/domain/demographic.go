package domain

import (
	"strconv"
	"strings"
)

// DemographicRow representa o desempenho de um segmento (faixa etária, gênero)
// do anúncio. O CTR é armazenado como fração, igual ao InsightRecord.
type DemographicRow struct {
	Age         string  `json:"age"`
	Gender      string  `json:"gender"`
	Impressions int     `json:"impressions"`
	Reach       int     `json:"reach"`
	Clicks      int     `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int     `json:"conversions"`
	CTR         float64 `json:"ctr"`
	CPM         float64 `json:"cpm"`
}

// Demographics é a coleção de segmentos demográficos, sem ordem garantida
type Demographics []DemographicRow

// AgeKey é a chave de ordenação numérica de uma faixa etária
type AgeKey struct {
	Lower int
	Upper int
}

// Less compara duas chaves: primeiro pelo limite inferior, depois pelo superior
func (k AgeKey) Less(other AgeKey) bool {
	if k.Lower != other.Lower {
		return k.Lower < other.Lower
	}
	return k.Upper < other.Upper
}

// AgeSortKey converte uma faixa etária ("25-34", "65+") em chave numérica de
// ordenação. Faixas abertas ("65+") ordenam depois das fechadas de mesmo limite
// inferior e valores não reconhecidos vão para o final.
func AgeSortKey(age string) AgeKey {
	if age == "65+" {
		return AgeKey{Lower: 65, Upper: 100}
	}

	if strings.Contains(age, "-") {
		parts := strings.SplitN(age, "-", 2)

		lower, errLower := strconv.Atoi(parts[0])
		upper, errUpper := strconv.Atoi(parts[1])
		if errLower != nil || errUpper != nil {
			return AgeKey{Lower: 999, Upper: 999}
		}

		return AgeKey{Lower: lower, Upper: upper}
	}

	if n, err := strconv.Atoi(age); err == nil {
		return AgeKey{Lower: n, Upper: n}
	}

	return AgeKey{Lower: 999, Upper: 999}
}
