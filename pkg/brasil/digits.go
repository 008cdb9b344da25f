package brasil

// OnlyDigits remove qualquer coisa que não seja dígito (0-9), preservando a ordem.
// Entrada vazia representa "sem valor" e devolve "".
func OnlyDigits(s string) string {
	if s == "" {
		return ""
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}
	return string(out)
}

// allEqual indica se todos os bytes de s são iguais ao primeiro.
func allEqual(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
