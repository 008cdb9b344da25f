package ws

/*

go test -run 'TestParseAcoes|TestHandler_' -v ./internal/ws -count=1

*/

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestParseAcoes(t *testing.T) {
	if got := ParseAcoes(""); got != nil {
		t.Fatalf("vazio deveria assinar tudo, got %v", got)
	}
	if got := ParseAcoes(" , "); got != nil {
		t.Fatalf("só separadores deveria assinar tudo, got %v", got)
	}
	got := ParseAcoes("Cadastro, exclusao,")
	if len(got) != 2 || !got["cadastro"] || !got["exclusao"] {
		t.Fatalf("got %v", got)
	}
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("clients=%d want=%d", h.Clients(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHandler_DeliversSubscribedEvents(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	srv := httptest.NewServer(Handler(h, 8, slog.Default()))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?acoes=exclusao"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// primeira mensagem: a inscrição, enviada só para esta conexão
	_, first, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read inscricao: %v", err)
	}
	var ins Inscricao
	if err := json.Unmarshal(first, &ins); err != nil {
		t.Fatalf("inscricao inválida: %v (%s)", err, first)
	}
	if ins.Acao != "inscricao" || ins.ConexaoID == "" || len(ins.Acoes) != 1 || ins.Acoes[0] != "exclusao" {
		t.Fatalf("inscricao inesperada: %#v", ins)
	}
	waitClients(t, h, 1)

	h.Broadcast("cadastro", []byte(`{"acao":"cadastro"}`))
	h.Broadcast("exclusao", []byte(`{"acao":"exclusao"}`))

	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// o cadastro é filtrado; a primeira mensagem já é a exclusão
	if string(msg) != `{"acao":"exclusao"}` {
		t.Fatalf("got %s", msg)
	}
}

func TestHandler_UnregistersOnClose(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	srv := httptest.NewServer(Handler(h, 0, nil))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitClients(t, h, 1)

	// sem filtro a inscrição vem com a lista vazia
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, first, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read inscricao: %v", err)
	}
	if !strings.Contains(string(first), `"acoes":[]`) {
		t.Fatalf("inscricao=%s", first)
	}

	_ = conn.Close()
	waitClients(t, h, 0)
}
