package utils

import (
	"fmt"
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata um valor monetário em dólares, arredondado
// para o inteiro mais próximo e com separador de milhar: $134,400
func FormatCurrency(value float64) string {
	rounded := int64(math.Round(math.Abs(value)))
	if value < 0 {
		return "-$" + GroupThousands(rounded)
	}
	return "$" + GroupThousands(rounded)
}

// FormatCount formata uma contagem com separador de milhar
func FormatCount(value int) string {
	if value < 0 {
		return "-" + GroupThousands(int64(-value))
	}
	return GroupThousands(int64(value))
}

// GroupThousands insere vírgulas a cada três dígitos: 1234567 → 1,234,567
func GroupThousands(value int64) string {
	digits := strconv.FormatInt(value, 10)
	if len(digits) <= 3 {
		return digits
	}

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return string(out)
}

// FormatDeltaPercent formata a variação percentual das métricas de
// destaque com uma casa decimal e sinal explícito no positivo: +4.3%
func FormatDeltaPercent(value float64) string {
	if value > 0 {
		return fmt.Sprintf("+%.1f%%", value)
	}
	return fmt.Sprintf("%.1f%%", value)
}

// FormatChangePercent formata a variação de uma conta; zero também
// recebe o sinal positivo: +0.0%
func FormatChangePercent(value float64) string {
	if value >= 0 {
		return fmt.Sprintf("+%.1f%%", value)
	}
	return fmt.Sprintf("%.1f%%", value)
}
