package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/felixgeelhaar/taskburn/internal/infrastructure/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := cli.Execute()
	if err == nil {
		return 0
	}
	var cliErr *cli.CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", cliErr.Hint)
		}
		return cliErr.ExitCode
	}
	return 1
}
