package ws

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Client é uma conexão do feed. Acoes vazio = recebe todas as ações.
type Client struct {
	ID    string
	Acoes map[string]bool
	Send  chan []byte
}

// Wants indica se o cliente assinou a ação.
func (c *Client) Wants(acao string) bool {
	return len(c.Acoes) == 0 || c.Acoes[acao]
}

// Message é um evento do cadastro já serializado.
type Message struct {
	Acao string
	Body []byte
}

type unicastMsg struct {
	id  string
	msg []byte
}

type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client // id -> client
	register chan *Client
	unreg    chan *Client

	sendAll chan Message    // envio para quem assinou a ação
	unicast chan unicastMsg // envio para 1 cliente

	log     *slog.Logger
	stop    chan struct{}
	stopped chan struct{}

	nextID atomic.Uint64
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		clients:  make(map[string]*Client),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		sendAll:  make(chan Message, 1024),
		unicast:  make(chan unicastMsg, 1024),
		log:      log.With("cmp", "ws.hub"),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (h *Hub) newID() string {
	return fmt.Sprintf("c%d", h.nextID.Add(1))
}

// Run é o único goroutine que escreve em clients.
func (h *Hub) Run() {
	h.log.Info("hub_run_start")
	defer close(h.stopped)

	for {
		select {
		case c := <-h.register:
			if c.ID == "" {
				c.ID = h.newID()
			}
			h.mu.Lock()
			h.clients[c.ID] = c
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client_registered", "id", c.ID, "total", total)

		case c := <-h.unreg:
			if c == nil {
				continue
			}
			h.mu.Lock()
			h.drop(c.ID)
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client_unregistered", "id", c.ID, "total", total)

		case m := <-h.sendAll:
			h.mu.Lock()
			for id, c := range h.clients {
				if !c.Wants(m.Acao) {
					continue
				}
				select {
				case c.Send <- m.Body:
				default:
					// cliente lento -> dropa para não travar o hub
					h.drop(id)
					h.log.Warn("broadcast_drop_slow", "id", id)
				}
			}
			h.mu.Unlock()

		case u := <-h.unicast:
			h.mu.Lock()
			if c := h.clients[u.id]; c == nil {
				h.log.Warn("send_one_miss", "id", u.id)
			} else {
				select {
				case c.Send <- u.msg:
				default:
					h.drop(u.id)
					h.log.Warn("send_one_drop_slow", "id", u.id)
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for id := range h.clients {
				h.drop(id)
			}
			h.mu.Unlock()
			h.log.Info("hub_run_stop")
			return
		}
	}
}

// drop remove e fecha o Send do cliente; exige h.mu travado.
func (h *Hub) drop(id string) {
	if c, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(c.Send)
	}
}

func (h *Hub) Stop() {
	close(h.stop)
	<-h.stopped
}

// Clients devolve quantos clientes estão conectados.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Depois do Stop as chamadas abaixo viram no-op em vez de travar.

func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.stopped:
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unreg <- c:
	case <-h.stopped:
	}
}

func (h *Hub) Broadcast(acao string, b []byte) {
	select {
	case h.sendAll <- Message{Acao: acao, Body: b}:
	case <-h.stopped:
	}
}

func (h *Hub) SendToClient(id string, b []byte) {
	select {
	case h.unicast <- unicastMsg{id: id, msg: b}:
	case <-h.stopped:
	}
}
