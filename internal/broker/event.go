package broker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ações publicadas na fila do cadastro.
const (
	AcaoCadastro = "cadastro"
	AcaoEdicao   = "edicao"
	AcaoExclusao = "exclusao"
)

var acaoLabel = map[string]string{
	AcaoCadastro: "Cadastro",
	AcaoEdicao:   "Edição",
	AcaoExclusao: "Exclusão",
}

type Event struct {
	ID        string    `json:"id"`
	Acao      string    `json:"acao"`
	ClienteID string    `json:"cliente_id"`
	Documento string    `json:"documento"` // já mascarado (123.456.789-01)
	Nome      string    `json:"nome"`
	Mensagem  string    `json:"mensagem"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEvent(acao, clienteID, documento, nome string) Event {
	label, ok := acaoLabel[acao]
	if !ok {
		label = acao
	}
	return Event{
		ID:        uuid.NewString(),
		Acao:      acao,
		ClienteID: clienteID,
		Documento: documento,
		Nome:      nome,
		Mensagem:  fmt.Sprintf("%s de CLIENTE %s", label, nome),
		Timestamp: time.Now().UTC(),
	}
}

// DecodeEvent lê o corpo de uma mensagem da fila.
func DecodeEvent(body []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	return ev, nil
}
