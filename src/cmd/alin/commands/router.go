// FILE: alin/src/cmd/alin/commands/router.go
package commands

import (
	"fmt"
	"io"
)

// Handler defines the interface required for all subcommands.
type Handler interface {
	Execute(args []string) error
	Description() string
	Help() string
}

// CommandRouter handles the routing of CLI arguments to the appropriate subcommand handler.
type CommandRouter struct {
	commands map[string]Handler
	output   io.Writer
}

// NewCommandRouter creates the router with the help and version commands
// and one command per processing node.
func NewCommandRouter(env *Environment) *CommandRouter {
	router := &CommandRouter{
		commands: make(map[string]Handler),
		output:   env.Stdout,
	}

	for _, spec := range nodeSpecs() {
		router.commands[spec.name] = NewNodeCommand(spec, env)
	}
	router.commands["version"] = NewVersionCommand(env.Stdout)
	router.commands["help"] = NewHelpCommand(router, env.Stdout)

	return router
}

// Route executes the subcommand named by args[1]. The boolean result is
// false when no command was given.
func (r *CommandRouter) Route(args []string) (bool, error) {
	if len(args) < 2 {
		return false, nil
	}

	cmdName := args[1]
	switch cmdName {
	case "-v", "--version":
		cmdName = "version"
	case "-h", "--help":
		cmdName = "help"
	}

	// Help flag after a command shows that command's help
	for _, arg := range args[2:] {
		if arg == "-h" || arg == "--help" {
			if handler, exists := r.commands[cmdName]; exists && cmdName != "help" {
				fmt.Fprint(r.output, handler.Help())
				return true, nil
			}
			return true, r.commands["help"].Execute(nil)
		}
	}

	handler, exists := r.commands[cmdName]
	if !exists {
		return true, fmt.Errorf("unknown command: %s\n\nRun 'alin help' for usage", cmdName)
	}

	return true, handler.Execute(args[2:])
}

// GetCommand returns a specific command handler by its name.
func (r *CommandRouter) GetCommand(name string) (Handler, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetCommands returns a map of all registered commands.
func (r *CommandRouter) GetCommands() map[string]Handler {
	return r.commands
}
