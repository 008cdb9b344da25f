package brasil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

const (
	LayoutDate     = "2006-01-02"
	LayoutDateBR   = "02/01/2006"
	LayoutDateTime = "02/01/2006 15:04:05"

	// aceita dia e mês com 1 ou 2 dígitos (1/2/2024, 01/02/2024)
	layoutDateBRLoose = "2/1/2006"
)

// ValidDateFormat indica se value está exatamente no layout informado
// (layout do pacote time, ex.: LayoutDateTime). Datas inexistentes, como
// 31/02, são rejeitadas.
func ValidDateFormat(value, layout string) bool {
	if value == "" {
		return false
	}
	t, err := time.Parse(layout, value)
	return err == nil && t.Format(layout) == value
}

/*
ParseDate normaliza uma data para yyyy-mm-dd, mantendo a hora se houver.

	ParseDate("31/12/2024 10:30", "")  // "2024-12-31 10:30"
	ParseDate("2024-12-31", "")        // "2024-12-31"

Vazio devolve def. Data que não está em nenhum dos dois formatos devolve def
e ErrInvalidDate.
*/
func ParseDate(value, def string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return def, nil
	}

	parts := strings.Split(value, " ")
	date, clock := parts[0], ""
	if len(parts) > 1 && parts[1] != "" {
		clock = " " + parts[1]
	}

	if ValidDateFormat(date, LayoutDate) {
		return date + clock, nil
	}

	t, err := time.Parse(layoutDateBRLoose, date)
	if err != nil {
		return def, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t.Format(LayoutDate) + clock, nil
}
