package ctrlc

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"
)

// HandleCtrlC cancels on the first interrupt, gives the program a moment
// to notice, runs cleanup and exits. cleanup may be nil.
func HandleCtrlC(cancel context.CancelFunc, cleanup func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	logger := slog.Default().With("area", "ctrlc")
	go func() {
		<-c
		logger.Info("ctrl-c")
		cancel()
		time.Sleep(time.Millisecond * 250)
		if cleanup != nil {
			cleanup()
		}
		os.Exit(1)
	}()
}
