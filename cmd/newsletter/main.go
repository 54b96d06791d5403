package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/frnietz/newsletter-tr/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	action := flag.Arg(0)
	if action == "" {
		action = "fetch"
	}

	ctx := context.Background()

	app, err := bootstrap(ctx, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Shutdown(ctx) }()

	switch action {
	case "fetch":
		err = app.runFetch(ctx)
	case "export":
		err = app.runExport(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown action %q (want fetch or export)\n", action)
		os.Exit(2)
	}

	if err != nil {
		logger.ErrorWithErr(ctx, "Cycle failed", err, "action", action)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
