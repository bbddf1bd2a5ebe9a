// Package main is the entry point for the eleven-usage CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/r-castano/eleven-usage/internal/commands"
	"github.com/r-castano/eleven-usage/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	app := commands.NewApp(cfg)
	return app.Run(context.Background(), os.Args)
}
