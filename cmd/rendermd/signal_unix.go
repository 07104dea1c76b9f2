//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// renderSignals end a render run early. SIGHUP is included so closing the
// terminal during the cleanup wait still removes the temp page.
var renderSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// notifyContext returns a context cancelled on the first renderSignals
// delivery. Call stop to release the signal handler.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, renderSignals...)
}
