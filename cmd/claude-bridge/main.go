package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/clibridge/mcpbridge"
	"github.com/clibridge/mcpbridge/bridge"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := mcpbridge.Run(ctx, os.Args[1:], bridge.Claude(), os.Stdout); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}
