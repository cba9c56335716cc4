package main

import (
	"log/slog"
	"os"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := newRootCommand(log).Execute(); err != nil {
		os.Exit(1)
	}
}
