package cli

import (
	"fmt"
	"io"
	"os"
)

var version = "development"

// VersionCommand holds the flags for the `version` command.
type VersionCommand struct {
	out io.Writer
}

// Execute prints the version.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	out := command.out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintln(out, version)
	return err
}
