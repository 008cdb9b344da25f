package ws

/*

go test -run 'TestHub_' -v ./internal/ws -count=1

*/

import (
	"log/slog"
	"testing"
	"time"
)

func recv(t *testing.T, c *Client, want string) {
	t.Helper()
	select {
	case got := <-c.Send:
		if string(got) != want {
			t.Fatalf("%s got %q want %q", c.ID, got, want)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timeout waiting %s", c.ID)
	}
}

func TestHub_Broadcast(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	c1 := &Client{Send: make(chan []byte, 1)}
	c2 := &Client{Send: make(chan []byte, 1)}
	h.Register(c1)
	h.Register(c2)

	h.Broadcast("cadastro", []byte("hello"))

	recv(t, c1, "hello")
	recv(t, c2, "hello")
}

func TestHub_BroadcastRespectsSubscription(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	all := &Client{Send: make(chan []byte, 2)}
	onlyDel := &Client{Acoes: map[string]bool{"exclusao": true}, Send: make(chan []byte, 2)}
	h.Register(all)
	h.Register(onlyDel)

	h.Broadcast("cadastro", []byte("c1"))
	h.Broadcast("exclusao", []byte("e1"))

	recv(t, all, "c1")
	recv(t, all, "e1")
	recv(t, onlyDel, "e1")

	select {
	case got := <-onlyDel.Send:
		t.Fatalf("unexpected message for filtered client: %q", got)
	default:
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	slow := &Client{Send: make(chan []byte)} // sem buffer: nunca aceita
	h.Register(slow)

	h.Broadcast("cadastro", []byte("x"))

	deadline := time.Now().Add(500 * time.Millisecond)
	for h.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("slow client still registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if _, open := <-slow.Send; open {
		t.Fatal("Send should be closed after drop")
	}
}

func TestHub_SendToClient(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	c := &Client{ID: "fixo", Send: make(chan []byte, 1)}
	h.Register(c)
	h.SendToClient("fixo", []byte("so pra voce"))
	recv(t, c, "so pra voce")

	h.Unregister(c)
	if _, open := <-c.Send; open {
		t.Fatal("Send should be closed after unregister")
	}
}
