package brasil

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DDDs dentro da faixa 11-99 que não existem.
var invalidDDDs = map[int]struct{}{
	25: {}, 26: {}, 29: {}, 36: {}, 39: {}, 52: {}, 72: {}, 76: {}, 78: {},
}

// ValidDDD valida um código de área informado como texto ("11", " 21 ").
func ValidDDD(ddd string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(ddd))
	if err != nil {
		return false
	}
	return ValidDDDNumber(n)
}

// ValidDDDNumber valida um código de área numérico.
// Nenhum DDD termina em 0 (10, 20, ...).
func ValidDDDNumber(ddd int) bool {
	if ddd < 11 || ddd > 99 || ddd%10 == 0 {
		return false
	}
	_, bad := invalidDDDs[ddd]
	return !bad
}

/*
phoneRe identifica, de forma simples, telefones brasileiros: código do país
opcional (+55, 0055, 55), DDD opcional que não começa com 0, e número de 8
dígitos (fixo, começando de 2 a 9) ou 9 dígitos (celular, começando com 9).
*/
var phoneRe = regexp.MustCompile(`^(?:(?:\+|00)?(55)\s?)?(?:\(?([1-9][0-9])\)?\s?)?(?:((?:9\d|[2-9])\d{3})-?(\d{4}))$`)

// ValidPhone aceita, por exemplo: "+55 (11) 98888-8888", "9999-9999",
// "21 98888-8888" e "5511988888888". Zeros à esquerda são ignorados.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(strings.TrimLeft(phone, "0"))
}

const (
	regionBR      = "BR"
	countryCodeBR = 55
)

// NationalNumber devolve DDD + número, só dígitos: zeros à esquerda e o código
// do país (55) saem. A separação entre código do país e número nacional fica com
// o metadado de numeração do Brasil (libphonenumber).
func NationalNumber(phone string) string {
	d := strings.TrimLeft(OnlyDigits(phone), "0")
	if len(d) < 2 {
		return d
	}
	num, err := phonenumbers.Parse(d, regionBR)
	if err != nil || num.GetCountryCode() != countryCodeBR {
		return d
	}
	return phonenumbers.GetNationalSignificantNumber(num)
}

// PhoneDDD devolve o DDD de um telefone com DDD (10 ou 11 dígitos nacionais), ou "".
func PhoneDDD(phone string) string {
	d := NationalNumber(phone)
	if len(d) != 10 && len(d) != 11 {
		return ""
	}
	return d[:2]
}
