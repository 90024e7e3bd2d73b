// Command blocks simulates the host that drives the background task and the
// screen controller.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/blocks/cmd/blocks/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
