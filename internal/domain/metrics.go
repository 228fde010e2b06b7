package domain

// Cálculos de métricas derivadas compartilhados entre os níveis agregado,
// segmentado e diário. Denominador zero resulta em zero, nunca em erro.

// ConversionRate calcula a taxa de conversão em percentual
func ConversionRate(conversions, clicks int) float64 {
	if clicks <= 0 {
		return 0
	}
	return (float64(conversions) / float64(clicks)) * 100
}

// CostPerConversion calcula o custo por conversão (CPA)
func CostPerConversion(spend float64, conversions int) float64 {
	if conversions <= 0 {
		return 0
	}
	return spend / float64(conversions)
}

// CPM calcula o custo por mil impressões
func CPM(spend float64, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return (spend / float64(impressions)) * 1000
}

// CPC calcula o custo por clique
func CPC(spend float64, clicks int) float64 {
	if clicks <= 0 {
		return 0
	}
	return spend / float64(clicks)
}
