package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Werneck0live/brhelpers/internal/admin"
	"github.com/Werneck0live/brhelpers/internal/broker"
	"github.com/Werneck0live/brhelpers/internal/config"
	"github.com/Werneck0live/brhelpers/internal/db"
	"github.com/Werneck0live/brhelpers/internal/handlers"
	"github.com/Werneck0live/brhelpers/internal/middleware"
	"github.com/Werneck0live/brhelpers/internal/repository"
)

// cmd/api/main.go
func main() {
	cfg := config.Load() // .env

	// Logger JSON "global" - permite usar slog.Info/slog.Error/Warn em qualquer lugar
	_ = config.InitLogger(cfg.LogLevel)
	slog.Info("starting", "port", cfg.Port, "mongo_db", cfg.MongoDB)

	// HOOK: admin job (one-off)
	task := flag.String("task", "", "admin task: seed")
	flag.Parse()
	if *task != "" {
		os.Exit(runTask(cfg, *task))
	}

	// conecta Mongo
	client, err := db.NewMongoClient(cfg.MongoURI)
	if err != nil {
		slog.Error("mongo_connect_error", "err", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := repository.NewClienteRepository(client.Database(cfg.MongoDB))
	ictx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repo.EnsureIndexes(ictx); err != nil {
		cancel()
		slog.Error("ensure_indexes_error", "err", err)
		os.Exit(1)
	}
	cancel()

	// publisher (Rabbit)
	pub, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
	if err != nil {
		slog.Error("rabbitmq_connect_error", "err", err)
		os.Exit(1)
	}
	defer pub.Close()

	log := slog.Default().With("svc", "api")
	h := handlers.NewClienteHandler(repo, pub, log, cfg.RequestTimeout)
	mux := handlers.NewRouter(h, handlers.ToolsHandler{})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.RequestLogger(log, mux),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// start server
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server_error", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful_shutdown_error", "err", err)
	}
	slog.Info("stopped")
}

// runTask executa um job administrativo e devolve o exit code.
func runTask(cfg *config.Config, task string) int {
	switch task {
	case "seed":
		// conecta somente o necessário para o seed
		client, err := db.NewMongoClient(cfg.MongoURI)
		if err != nil {
			slog.Error("mongo_connect_error", "err", err)
			return 1
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		repo := repository.NewClienteRepository(client.Database(cfg.MongoDB))
		if err := repo.EnsureIndexes(context.Background()); err != nil {
			slog.Error("ensure_indexes_error", "err", err)
			return 1
		}
		if err := admin.SeedClientes(context.Background(), repo, slog.Default()); err != nil {
			slog.Error("seed_failed", "err", err)
			return 1
		}
		slog.Info("seed_done")
		return 0 // encerra o processo sem subir HTTP
	default:
		slog.Error("unknown_admin_task", "task", task)
		return 2
	}
}
