package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	worldcmd "github.com/louisbranch/pursuit/internal/cmd/worldd"
)

func main() {
	cfg, err := worldcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[WORLD] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := worldcmd.Run(ctx, cfg); err != nil {
		if cfg.HealthCheck {
			log.Fatalf("unhealthy: %v", err)
		}
		log.Fatalf("failed to serve: %v", err)
	}
}
