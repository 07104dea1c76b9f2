//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// renderSignals end a render run early. Windows only delivers Interrupt.
var renderSignals = []os.Signal{os.Interrupt}

// notifyContext returns a context cancelled on Ctrl+C.
// Call stop to release the signal handler.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, renderSignals...)
}
