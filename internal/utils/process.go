package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// OnProcessKill runs cleanup and exits once the process receives SIGTERM.
// Ctrl+C is left to the console, which treats it as "cancel this prompt".
func OnProcessKill(cleanup func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)

	go func() {
		<-sigChan // block until signal arrives
		cleanup()
		os.Exit(1)
	}()
}
