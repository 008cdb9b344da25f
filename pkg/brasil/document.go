package brasil

// ValidCPF valida um CPF (com ou sem pontuação) pelos dois dígitos verificadores.
// Sequências de um dígito só (111.111.111-11) são rejeitadas.
func ValidCPF(s string) bool {
	cpf := OnlyDigits(s)
	if len(cpf) != 11 || allEqual(cpf) {
		return false
	}
	for t := 9; t < 11; t++ {
		sum := 0
		for c := 0; c < t; c++ {
			sum += int(cpf[c]-'0') * (t + 1 - c)
		}
		if ((sum*10)%11)%10 != int(cpf[t]-'0') {
			return false
		}
	}
	return true
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCNPJ valida um CNPJ (com ou sem pontuação) pelos dois dígitos verificadores.
func ValidCNPJ(s string) bool {
	cnpj := OnlyDigits(s)
	if len(cnpj) != 14 || allEqual(cnpj) {
		return false
	}
	return cnpjCheckDigit(cnpj, cnpjWeights1) == int(cnpj[12]-'0') &&
		cnpjCheckDigit(cnpj, cnpjWeights2) == int(cnpj[13]-'0')
}

func cnpjCheckDigit(cnpj string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(cnpj[i]-'0') * w
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

// DocumentType diz se o valor tem tamanho de CPF ou de CNPJ.
type DocumentType string

const (
	DocumentCPF     DocumentType = "cpf"
	DocumentCNPJ    DocumentType = "cnpj"
	DocumentUnknown DocumentType = ""
)

// DocumentTypeOf classifica pela quantidade de dígitos, sem validar.
func DocumentTypeOf(s string) DocumentType {
	switch len(OnlyDigits(s)) {
	case 11:
		return DocumentCPF
	case 14:
		return DocumentCNPJ
	}
	return DocumentUnknown
}

// ValidDocument aceita um CPF ou um CNPJ válido.
func ValidDocument(s string) bool {
	switch DocumentTypeOf(s) {
	case DocumentCPF:
		return ValidCPF(s)
	case DocumentCNPJ:
		return ValidCNPJ(s)
	}
	return false
}
