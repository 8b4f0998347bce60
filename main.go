// Fibstudy - a command-line spaced-repetition study planner.

package main

import (
	"os"

	"github.com/tmkelleher/fibstudy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
