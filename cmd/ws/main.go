package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/brhelpers/internal/broker"
	"github.com/Werneck0live/brhelpers/internal/config"
	"github.com/Werneck0live/brhelpers/internal/middleware"
	"github.com/Werneck0live/brhelpers/internal/ws"
)

func main() {

	wscfg := config.LoadWSConfig()

	_ = config.InitLogger(wscfg.LogLevel)
	log := slog.Default().With("svc", "ws")
	hub := ws.NewHub(log)
	go hub.Run()

	// Conecta no Rabbit e começa a consumir
	consumer, err := broker.NewConsumer(wscfg.RabbitURI, wscfg.RabbitQueue, "ws-consumer", wscfg.ConsumerPrefetch, log)
	if err != nil {
		log.Error("rabbit_consumer_start_error", "err", err)
		os.Exit(1)
	}
	defer func() { _ = consumer.Close() }()

	// encaminha mensagens do Rabbit para o hub
	go forward(consumer.Deliveries(), hub, log)

	// HTTP: /ws e /healthz
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", ws.Handler(hub, wscfg.ClientBuffer, log))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	srv := &http.Server{
		Addr:              wscfg.Addr,
		Handler:           middleware.RequestLogger(log, mux),
		ReadHeaderTimeout: wscfg.ReadHeaderTimeout,
	}

	// O servidor é inicializado e começa a escutar na porta configurada
	go func() {
		log.Info("ws_listen", "addr", wscfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http_server_error", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), wscfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(ctx)
	hub.Stop()

	log.Info("stopped")
}

// forward repassa cada evento para os clientes que assinaram a ação.
// Mensagem que não é um evento do cadastro é descartada.
func forward(deliveries <-chan amqp.Delivery, hub *ws.Hub, log *slog.Logger) {
	for d := range deliveries {
		ev, err := broker.DecodeEvent(d.Body)
		if err != nil {
			log.Warn("delivery_discarded", "message_id", d.MessageId, "err", err)
			continue
		}
		hub.Broadcast(ev.Acao, d.Body)
	}
	log.Warn("deliveries_channel_closed")
}
