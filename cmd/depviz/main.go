package main

import (
	"fmt"
	"os"

	"depviz/internal/config"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(config.ExitCode(err))
	}
}
