package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"artspace/internal/catalog"
	"artspace/internal/config"
	"artspace/internal/logger"
	"artspace/internal/mcpserver"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default $HOME/.config/artspace/config.yml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol.
	log := logger.NewStderr(cfg.LogLevel)
	defer log.Sync()

	c, err := catalog.Load(cfg.Catalog())
	if err != nil {
		log.Fatal("load catalog", zap.Error(err))
	}

	server, err := mcpserver.NewServer(mcpserver.DefaultConfig(), c, log)
	if err != nil {
		log.Fatal("create server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
