package main

import (
	"fmt"
	"os"

	"github.com/gridgames/tictactoe-cli/internal/cli"
)

// main - is the entry point of the application. The CLI loads the
// configuration, initializes the logger and runs the match.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cli.Execute()
}
