package models

import "time"

type Cliente struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Documento      string    `bson:"documento" json:"documento"`           // apenas dígitos (CPF ou CNPJ)
	TipoDocumento  string    `bson:"tipo_documento" json:"tipo_documento"` // cpf|cnpj
	Nome           string    `bson:"nome" json:"nome"`
	Telefone       string    `bson:"telefone,omitempty" json:"telefone,omitempty"`               // DDD + número, sem o 55
	DataNascimento string    `bson:"data_nascimento,omitempty" json:"data_nascimento,omitempty"` // yyyy-mm-dd
	RendaMensal    float64   `bson:"renda_mensal" json:"renda_mensal"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// ClientePatch carrega só os campos informados num update parcial; nil = não mexe.
type ClientePatch struct {
	Documento      *string
	TipoDocumento  *string
	Nome           *string
	Telefone       *string
	DataNascimento *string
	RendaMensal    *float64
}

// Empty indica que nenhum campo foi informado.
func (p ClientePatch) Empty() bool {
	return p.Documento == nil && p.TipoDocumento == nil && p.Nome == nil &&
		p.Telefone == nil && p.DataNascimento == nil && p.RendaMensal == nil
}

// DisplayName é o nome exibido em eventos e logs.
func (c *Cliente) DisplayName() string {
	if c.Nome != "" {
		return c.Nome
	}
	return c.Documento
}
