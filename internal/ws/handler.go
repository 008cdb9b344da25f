package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Ajuste CORS conforme necessário
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ParseAcoes lê "cadastro,exclusao" em um filtro; vazio assina tudo.
func ParseAcoes(raw string) map[string]bool {
	out := make(map[string]bool)
	for _, a := range strings.Split(raw, ",") {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			out[a] = true
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Inscricao é a primeira mensagem de cada conexão: confirma o id e o filtro de ações.
type Inscricao struct {
	Acao      string   `json:"acao"` // sempre "inscricao"
	ConexaoID string   `json:"conexao_id"`
	Acoes     []string `json:"acoes"` // vazio = todas
}

func inscricaoFor(c *Client) []byte {
	acoes := make([]string, 0, len(c.Acoes))
	for a := range c.Acoes {
		acoes = append(acoes, a)
	}
	sort.Strings(acoes)
	b, _ := json.Marshal(Inscricao{Acao: "inscricao", ConexaoID: c.ID, Acoes: acoes})
	return b
}

// Handler faz o upgrade de /ws?acoes=... e registra a conexão no hub.
// buffer é quantas mensagens o cliente pode acumular antes de ser derrubado.
func Handler(hub *Hub, buffer int, log *slog.Logger) http.HandlerFunc {
	if buffer <= 0 {
		buffer = 256
	}
	if log == nil {
		log = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("ws_upgrade_error", "err", err)
			return
		}

		client := &Client{
			ID:    hub.newID(),
			Acoes: ParseAcoes(r.URL.Query().Get("acoes")),
			Send:  make(chan []byte, buffer),
		}
		hub.Register(client)
		hub.SendToClient(client.ID, inscricaoFor(client))
		log.Info("ws_client_connected", "id", client.ID, "remote", r.RemoteAddr)

		go writePump(conn, client)
		go readPump(hub, conn, client)
	}
}

// writePump envia o que chega em Send e mantém o ping; Send fechado encerra a conexão.
func writePump(conn *websocket.Conn, c *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.Send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump só detecta o fechamento; o feed é de mão única.
func readPump(hub *Hub, conn *websocket.Conn, c *Client) {
	defer func() {
		hub.Unregister(c)
		_ = conn.Close()
	}()
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
