package main

import (
	"log"
	"net/http"
	"os"

	"story-gate/internal/config"
	"story-gate/internal/router"
)

// @title Story Gate API
// @version 1.0
// @description App web con gate por clave: sube stories de video a dos tiers (disco local + media host remoto) y registra todo en un log de eventos append-only.
// @BasePath /
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	r, err := router.NewRouter(router.Options{Config: cfg})
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}

	addr := ":" + cfg.HTTP.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	log.Printf("starting server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
