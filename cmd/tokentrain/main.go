// Command tokentrain drives the trainer package from the command line: it
// reads a corpus, builds the initial graph with the configured unit, runs
// K training iterations, and writes the resulting merge list as JSON.
package main

import (
	"fmt"
	"os"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
