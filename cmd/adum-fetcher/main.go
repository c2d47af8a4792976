// The main package for the adum-fetcher executable.
package main

import (
	"github.com/burgesQ/adum-fetcher/cmd"
)

// main defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
