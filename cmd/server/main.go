package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"pomobar/internal/config"
	"pomobar/internal/db"
	"pomobar/internal/handler"
	"pomobar/internal/notify"
	"pomobar/internal/repository"
	"pomobar/internal/router"
	"pomobar/internal/service"
	"pomobar/internal/ticker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := repository.NewStore(database)
	engine, err := service.NewEngine(ctx, store)
	if err != nil {
		log.Fatalf("start engine: %v", err)
	}

	authService, err := service.NewAuthService(cfg.ControlPassword, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("init auth: %v", err)
	}
	if !authService.Enabled() {
		log.Println("CONTROL_PASSWORD not set, control API is unauthenticated")
	}

	queue := ticker.NewQueue()
	hub := notify.NewHub()
	var chime notify.Chime
	if cfg.Chime {
		chime = notify.BellChime{W: os.Stdout}
	}
	dispatcher := notify.NewDispatcher(engine, hub, notify.LogNotifier{}, chime)
	loop := ticker.NewLoop(engine, queue, ticker.Config{Interval: cfg.TickInterval})

	var workers sync.WaitGroup
	workers.Add(2)
	go func() {
		defer workers.Done()
		loop.Run(ctx)
	}()
	go func() {
		defer workers.Done()
		dispatcher.Run(ctx, queue)
	}()

	handlers := router.Handlers{
		Health:   handler.NewHealthHandler(queue),
		Auth:     handler.NewAuthHandler(authService),
		Timer:    handler.NewTimerHandler(engine, queue, hub),
		Settings: handler.NewSettingsHandler(engine),
		Stats:    handler.NewStatsHandler(engine),
	}
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.New(authService, handlers, cfg.CORSOrigins),
	}

	go func() {
		exit := make(chan os.Signal, 1)
		signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
		<-exit
		log.Println("shutting down")

		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		// Event streams end once the hub closes their channels.
		hub.Close()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown server: %v", err)
		}
	}()

	log.Printf("pomobar listening on :%s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("run server: %v", err)
	}

	cancel()
	queue.Close()
	workers.Wait()
	log.Println("stopped")
}
