package broker

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestNewEvent(t *testing.T) {
	ev := NewEvent(AcaoExclusao, "11144477735", "111.444.777-35", "Maria")

	if _, err := uuid.Parse(ev.ID); err != nil {
		t.Fatalf("id is not a uuid: %q", ev.ID)
	}
	if ev.Mensagem != "Exclusão de CLIENTE Maria" {
		t.Fatalf("mensagem=%q", ev.Mensagem)
	}
	if ev.Timestamp.IsZero() || ev.Timestamp.Location().String() != "UTC" {
		t.Fatalf("timestamp=%v", ev.Timestamp)
	}

	other := NewEvent(AcaoExclusao, "11144477735", "111.444.777-35", "Maria")
	if other.ID == ev.ID {
		t.Fatal("ids should be unique per event")
	}
}

func TestDecodeEvent(t *testing.T) {
	ev := NewEvent(AcaoCadastro, "11222333000181", "11.222.333/0001-81", "ACME")
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeEvent(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != ev.ID || got.Acao != AcaoCadastro || got.Documento != "11.222.333/0001-81" {
		t.Fatalf("unexpected: %#v", got)
	}

	if _, err := DecodeEvent([]byte("Cadastro de EMPRESA x")); err == nil {
		t.Fatal("expected error for non-json body")
	}
}
