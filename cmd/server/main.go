// Command server runs the Haqq Vault HTTP API.
//
// Usage:
//
//	server
//
// Requires AUTH_JWT_SECRET environment variable to be set. See
// internal/config for the full list of settings; CONFIG_PATH may point
// at a YAML config file.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/haqqvault/backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
