package cmd

import (
	"os"
	"os/signal"
	"syscall"
)

func setupSignals() <-chan os.Signal {
	// buffered so a signal arriving before the event loop selects is not lost
	// (see https://pkg.go.dev/os/signal#Notify)
	c := make(chan os.Signal, 1)

	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	return c
}
