package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yusufkecer/body-metrics-calculator/internal/config"
	"github.com/yusufkecer/body-metrics-calculator/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
