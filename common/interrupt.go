package common

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// InterruptContext returns a context canceled on the first interrupt or
// termination signal. Call stop to release the signal handler; a second
// signal after stop gets the default behavior and kills the process.
func InterruptContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent,
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGQUIT,
	)
}
