package brasil

// Placeholder é o caractere do template substituído pelos dígitos.
const Placeholder = '#'

const (
	MaskCPF       = "###.###.###-##"
	MaskCNPJ      = "##.###.###/####-##"
	MaskCEP       = "#####-###"
	MaskPhone     = "(##) ####-####"
	MaskCellPhone = "(##) #####-####"
	MaskDate      = "##/##/####"
)

/*
Mask aplica o template em value, da esquerda para a direita.

Cada '#' consome o próximo caractere de value; se value acabou, o '#' é
simplesmente pulado. Os demais caracteres do template são literais e sempre
entram no resultado, mesmo depois que value acabou. O que sobrar de value é
descartado.

	Mask("12345678901", MaskCPF)                     // 123.456.789-01
	Mask("103000", "Agora são ## horas e ## minutos") // Agora são 10 horas e 30 minutos
*/
func Mask(value, template string) string {
	src := []rune(value)
	out := make([]rune, 0, len(template))
	k := 0
	for _, r := range template {
		if r != Placeholder {
			out = append(out, r)
			continue
		}
		if k < len(src) {
			out = append(out, src[k])
			k++
		}
	}
	return string(out)
}

// noDigits indica valor sem número útil: nenhum dígito ou só "0".
func noDigits(d string) bool {
	return d == "" || d == "0"
}

// PhoneMask formata um telefone com DDD: 11 dígitos usa a máscara de celular,
// qualquer outra quantidade usa a de fixo. Sem dígitos (ou só "0") devolve "".
func PhoneMask(value string) string {
	d := OnlyDigits(value)
	if noDigits(d) {
		return ""
	}
	if len(d) == 11 {
		return Mask(d, MaskCellPhone)
	}
	return Mask(d, MaskPhone)
}

// DocumentMask formata CPF (11 dígitos) ou CNPJ (14 dígitos).
// Outros tamanhos voltam só com os dígitos; sem dígitos (ou só "0") devolve "".
func DocumentMask(value string) string {
	d := OnlyDigits(value)
	if noDigits(d) {
		return ""
	}
	switch len(d) {
	case 11:
		return Mask(d, MaskCPF)
	case 14:
		return Mask(d, MaskCNPJ)
	}
	return d
}

// CEPMask formata um CEP de 8 dígitos; outros tamanhos voltam só com os dígitos.
func CEPMask(value string) string {
	d := OnlyDigits(value)
	if len(d) != 8 {
		return d
	}
	return Mask(d, MaskCEP)
}
