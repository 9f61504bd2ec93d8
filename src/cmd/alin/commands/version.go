// FILE: alin/src/cmd/alin/commands/version.go
package commands

import (
	"fmt"
	"io"

	"alin/src/internal/version"
)

// VersionCommand handles version display
type VersionCommand struct {
	output io.Writer
}

// NewVersionCommand creates a new version command
func NewVersionCommand(output io.Writer) *VersionCommand {
	return &VersionCommand{output: output}
}

func (c *VersionCommand) Execute(args []string) error {
	fmt.Fprintln(c.output, version.String())
	return nil
}

func (c *VersionCommand) Description() string {
	return "Show version information"
}

func (c *VersionCommand) Help() string {
	return `Version Command - Show alin version information

Usage:
  alin version
  alin -v
  alin --version
`
}
