package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-service/internal/config"
	httpx "order-service/internal/http"
	"order-service/internal/http/handlers"
	"order-service/internal/logger"
	"order-service/internal/rabbit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.Common.LogLevel)

	create := &handlers.CreateOrderHandler{
		Publisher: rabbit.NewPublisher(cfg.Rabbit.URL),
		Log:       log,
	}

	router := httpx.NewRouter(&httpx.Handlers{
		Health:      handlers.Health,
		CreateOrder: create.ServeHTTP,
	}, httpx.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Log:            log,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
