package brasil

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrInvalidNumber = errors.New("invalid number")

// numericRe aceita apenas a notação numérica "pura" (sinal, decimal com ponto, expoente).
var numericRe = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

/*
ParseNumber converte um valor digitado por usuário em float64.

  - vazio: devolve def
  - numérico puro ("10", "10.555"): arredonda para 2 casas
  - ponto nos 3 últimos caracteres ("1,234.56"): vírgula é separador de milhar
  - caso contrário ("1.234,56", "10,5"): ponto é milhar e vírgula é decimal

Se depois da normalização o texto ainda não for número, devolve def e ErrInvalidNumber.
*/
func ParseNumber(value string, def float64) (float64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return def, nil
	}
	if numericRe.MatchString(v) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return def, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
		}
		return round2(f), nil
	}

	var norm string
	if tail := v[max(len(v)-3, 0):]; strings.Contains(tail, ".") {
		norm = strings.ReplaceAll(v, ",", "")
	} else {
		norm = strings.ReplaceAll(strings.ReplaceAll(v, ".", ""), ",", ".")
	}
	if !numericRe.MatchString(norm) {
		return def, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	f, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return def, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	return f, nil
}

// round2 arredona para 2 casas a partir da representação decimal mais curta de f,
// metade para longe do zero: 1.005 vira 1.01 (em binário 1.005 é 1.00499...).
func round2(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return math.Abs(f) // sem "-0"
	}
	ip, frac, _ := strings.Cut(strconv.FormatFloat(math.Abs(f), 'f', -1, 64), ".")
	if len(frac) <= 2 {
		return f
	}
	cents, err := strconv.ParseInt(ip+frac[:2], 10, 64)
	if err != nil {
		return math.Round(f*100) / 100
	}
	if frac[2] >= '5' {
		cents++
	}
	r := float64(cents) / 100
	if r == 0 {
		return 0
	}
	if f < 0 {
		return -r
	}
	return r
}

// FormatBRL formata em reais: duas casas, vírgula decimal e ponto de milhar.
// Com withSymbol o texto começa com "R$ ".
//
//	FormatBRL(1234.5, true)  // R$ 1.234,50
func FormatBRL(value float64, withSymbol bool) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	s := p.Sprintf("%.2f", round2(value))
	if withSymbol {
		return "R$ " + s
	}
	return s
}
