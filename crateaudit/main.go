/*
 * Crateaudit inspects a Rust workspace: it wraps the cargo linter and the
 * manifest inspector and turns their output into a filtered, sorted report.
 * Run without arguments to get comprehensive help.
 */

package main

import (
	"os"

	"crateaudit/cmd"
)

func main() {
	if cmd.RunRootCommand() != nil {
		os.Exit(1)
	}
}
