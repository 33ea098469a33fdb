// Command server runs the ElectNepal HTTP API.
//
// Configuration is read from ./config.yaml (or CONFIG_PATH) and the
// environment. Requires DATABASE_DSN and AUTH_JWT_SECRET.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/manesha63/electNepal-sub000/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
