package handlers

import (
	"errors"
	"strings"

	"github.com/Werneck0live/brhelpers/pkg/brasil"
)

var errInvalidDocumento = errors.New("invalid documento")

// normalizeDocumento devolve só os dígitos e o tipo (cpf|cnpj).
func normalizeDocumento(raw string) (string, string, error) {
	doc := brasil.OnlyDigits(raw)
	if !brasil.ValidDocument(doc) {
		return "", "", errInvalidDocumento
	}
	return doc, string(brasil.DocumentTypeOf(doc)), nil
}

func normalizeTelefone(raw string) string {
	return brasil.NationalNumber(raw)
}

// normalizeData aceita dd/mm/yyyy ou yyyy-mm-dd e guarda yyyy-mm-dd, sem hora.
func normalizeData(raw string) (string, error) {
	d, err := brasil.ParseDate(strings.TrimSpace(raw), "")
	if err != nil {
		return "", err
	}
	date, _, _ := strings.Cut(d, " ")
	return date, nil
}

func normalizeRenda(raw Valor) (float64, error) {
	return brasil.ParseNumber(string(raw), 0)
}
