package common

import (
	"fmt"
	"os"
	"os/signal"
)

// HandleInterrupt installs a Ctrl-C handler that prints a farewell message
// and exits 0, rather than letting the runtime's default handling abort
// with a nonzero status. citar never ran interactively long enough to need
// this; purepos-tag does, reading from stdin in a pipeline a user may want
// to stop mid-stream.
func HandleInterrupt() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	go func() {
		<-c
		fmt.Fprintln(os.Stderr, "Interrupted, goodbye.")
		os.Exit(0)
	}()
}
