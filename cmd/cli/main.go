package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tenzodev/tenzoauth/internal/cli"
	"github.com/tenzodev/tenzoauth/internal/config"
	"github.com/tenzodev/tenzoauth/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logging.NewDefault(slog.LevelInfo)
	app := cli.NewApp(cfg, log)

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "startup check failed: %v\n", err)
		os.Exit(1)
	}
}
