// Command routeplanner plans congestion-aware routes over a multi-region
// road network, from the command line or over HTTP.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
