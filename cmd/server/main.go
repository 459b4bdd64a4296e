package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"material-color-service/internal/api"
	"material-color-service/internal/config"
	"material-color-service/internal/service"
	"material-color-service/internal/storage"
	"material-color-service/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store, err := storage.NewStore(cfg.DataPath)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	swatchSvc, err := service.NewSwatchService(cfg.SwatchDBPath)
	if err != nil {
		log.Fatalf("init swatch service: %v", err)
	}
	log.Printf("swatch table loaded: %d entries", swatchSvc.Count())

	analysisSvc := service.NewAnalysisService(cfg, store, hub, swatchSvc.Matcher())

	router := api.NewRouter(cfg, store, hub, analysisSvc, swatchSvc)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
