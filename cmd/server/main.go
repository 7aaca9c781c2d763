// Command server runs the Telugu word analysis HTTP API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment. Without DATABASE_DSN the corpus lives in memory and is
// loaded from ANALYSIS_WORD_LIST_PATH at startup.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kesava/telugu-word-analysis/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
