package utils

import "strconv"

// ToFloat converte qualquer representação numérica vinda da API em float64.
// Valores ausentes, vazios ou inválidos retornam o valor padrão, nunca erro.
func ToFloat(value any, def float64) float64 {
	switch v := value.(type) {
	case nil:
		return def
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if v == "" {
			return def
		}

		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return def
		}

		return parsed
	default:
		return def
	}
}

// ToInt converte qualquer representação numérica vinda da API em int.
// Strings com casas decimais ("12.0") também são aceitas, como na API do Meta.
func ToInt(value any, def int) int {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		if v == "" {
			return def
		}

		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return def
		}

		return int(parsed)
	default:
		return def
	}
}
