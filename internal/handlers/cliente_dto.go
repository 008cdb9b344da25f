package handlers

import (
	"encoding/json"

	"github.com/Werneck0live/brhelpers/internal/models"
	"github.com/Werneck0live/brhelpers/pkg/brasil"
)

// Valor aceita número JSON (1234.56) ou texto no padrão brasileiro ("1.234,56").
type Valor string

func (v *Valor) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Valor(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = Valor(n.String())
	return nil
}

//	somente os campos do contrato; id e tipo_documento são derivados do documento
type ClienteCreateDTO struct {
	Documento      string `json:"documento" validate:"required,document"`
	Nome           string `json:"nome" validate:"required,notblank,max=120"`
	Telefone       string `json:"telefone" validate:"omitempty,phone_br"`
	DataNascimento string `json:"data_nascimento" validate:"omitempty,date_br"`
	RendaMensal    Valor  `json:"renda_mensal" validate:"omitempty,number_br"`
}

// Update parcial; ponteiros distinguem "omitido" de "informado".
type ClientePatchDTO struct {
	Documento      *string `json:"documento,omitempty" validate:"omitempty,document"`
	Nome           *string `json:"nome,omitempty" validate:"omitempty,notblank,max=120"`
	Telefone       *string `json:"telefone,omitempty" validate:"omitempty,phone_br"`
	DataNascimento *string `json:"data_nascimento,omitempty" validate:"omitempty,date_br"`
	RendaMensal    *Valor  `json:"renda_mensal,omitempty" validate:"omitempty,number_br"`
}

type ClientePutDTO struct {
	Documento      *string `json:"documento,omitempty" validate:"omitempty,document"`
	Nome           string  `json:"nome" validate:"required,notblank,max=120"`
	Telefone       string  `json:"telefone" validate:"omitempty,phone_br"`
	DataNascimento string  `json:"data_nascimento" validate:"omitempty,date_br"`
	RendaMensal    Valor   `json:"renda_mensal" validate:"omitempty,number_br"`
}

// ClienteResponse é o cliente com as visões formatadas para exibição.
type ClienteResponse struct {
	models.Cliente
	DocumentoFormatado string `json:"documento_formatado"`
	TelefoneFormatado  string `json:"telefone_formatado,omitempty"`
	RendaFormatada     string `json:"renda_formatada"`
}

func toResponse(c *models.Cliente) ClienteResponse {
	return ClienteResponse{
		Cliente:            *c,
		DocumentoFormatado: brasil.DocumentMask(c.Documento),
		TelefoneFormatado:  brasil.PhoneMask(c.Telefone),
		RendaFormatada:     brasil.FormatBRL(c.RendaMensal, true),
	}
}

func toResponses(list []models.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(list))
	for i := range list {
		out = append(out, toResponse(&list[i]))
	}
	return out
}
