// FILE: alin/src/cmd/alin/commands/help.go
package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// generalHelpTemplate is the default help message shown when no specific command is requested.
const generalHelpTemplate = `alin: single-record stream processing nodes.

Each command reads one complete record from stdin and writes at most one
record to stdout. Empty input produces no output and exit status 0.
Diagnostics go to stderr.

Usage:
  alin <command> [--key=value ...]

Commands:
%s

Configuration Sources (Precedence: CLI > Env > File > Defaults):
  state_file        ALIN_STATE_FILE        aggregation store path (empty = in memory)
  filter_level      ALIN_FILTER_LEVEL      minimum level for filter-level (default ERROR)
  alert_threshold   ALIN_ALERT_THRESHOLD   alert once total reaches this (default 0)
  alert_format      ALIN_ALERT_FORMAT      text | json
  max_input_bytes   ALIN_MAX_INPUT_BYTES   input size limit (default 16MiB)
  image_tool        ALIN_IMAGE_TOOL        auto | sips | convert
  logging.level     ALIN_LOGGING_LEVEL     debug | info | warn | error
  logging.output    ALIN_LOGGING_OUTPUT    stderr | file | none

  Config file: $ALIN_CONFIG_FILE, $ALIN_CONFIG_DIR/alin.toml or ~/.config/alin.toml

Examples:
  echo '[1,2,3]' | alin double | alin sum
  tail -n1 app.log | alin parse | alin filter-level | alin count | alin alert

For command-specific help:
  alin help <command>
  alin <command> --help
`

// HelpCommand handles the display of general or command-specific help messages.
type HelpCommand struct {
	router *CommandRouter
	output io.Writer
}

// NewHelpCommand creates a new help command handler.
func NewHelpCommand(router *CommandRouter, output io.Writer) *HelpCommand {
	return &HelpCommand{router: router, output: output}
}

// Execute displays the appropriate help message based on the provided arguments.
func (c *HelpCommand) Execute(args []string) error {
	if len(args) > 0 && args[0] != "" {
		cmdName := args[0]

		if handler, exists := c.router.GetCommand(cmdName); exists {
			fmt.Fprint(c.output, handler.Help())
			return nil
		}

		return fmt.Errorf("unknown command: %s", cmdName)
	}

	fmt.Fprintf(c.output, generalHelpTemplate, c.formatCommandList())
	return nil
}

// Description returns a brief one-line description of the command.
func (c *HelpCommand) Description() string {
	return "Display help information"
}

// Help returns the detailed help text for the 'help' command itself.
func (c *HelpCommand) Help() string {
	return `Help Command - Display help information

Usage:
  alin help              Show general help
  alin help <command>    Show help for a specific command
`
}

// formatCommandList creates a formatted and aligned list of all available commands.
func (c *HelpCommand) formatCommandList() string {
	commands := c.router.GetCommands()

	names := make([]string, 0, len(commands))
	maxLen := 0
	for name := range commands {
		names = append(names, name)
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		handler := commands[name]
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		lines = append(lines, fmt.Sprintf("  %s%s%s", name, padding, handler.Description()))
	}

	return strings.Join(lines, "\n")
}
