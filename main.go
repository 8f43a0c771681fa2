// Taskdeck - a local-first task manager for the command line.
package main

import (
	"os"

	"github.com/taskdeck/taskdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
