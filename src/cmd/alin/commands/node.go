// FILE: alin/src/cmd/alin/commands/node.go
package commands

import (
	"context"
	"fmt"
	"io"

	"alin/src/internal/config"
	"alin/src/internal/node"
	"alin/src/internal/sink"
	"alin/src/internal/source"

	"github.com/lixenwraith/log"
)

// Environment is what node commands run against. Setup resolves the
// configuration for one invocation and returns a ready logger together with
// its shutdown function.
type Environment struct {
	Context context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer

	// Color enables ANSI styling of alerts on Stderr
	Color bool

	Setup func(args []string) (*config.Config, *log.Logger, func(), error)
}

// nodeSpec describes one processing node command.
type nodeSpec struct {
	name        string
	description string
	help        string
	build       func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error)
}

// NodeCommand runs a single processing node over stdin and stdout.
type NodeCommand struct {
	spec nodeSpec
	env  *Environment
}

// NewNodeCommand creates a command for spec.
func NewNodeCommand(spec nodeSpec, env *Environment) *NodeCommand {
	return &NodeCommand{spec: spec, env: env}
}

// Execute loads configuration from args, builds the node and processes one
// record.
func (c *NodeCommand) Execute(args []string) error {
	cfg, logger, shutdown, err := c.env.Setup(args)
	if err != nil {
		return err
	}
	defer shutdown()

	transform, err := c.spec.build(cfg, logger, c.env)
	if err != nil {
		return fmt.Errorf("%s: %w", c.spec.name, err)
	}

	runner := node.NewRunner(
		source.NewStdinSource(c.env.Stdin, cfg.MaxInputBytes, logger),
		sink.NewConsoleSink(c.env.Stdout, logger),
		logger,
	)

	ctx := c.env.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if err := runner.Run(ctx, transform); err != nil {
		logger.Error("msg", "Node failed",
			"component", "main",
			"node", c.spec.name,
			"error", err)
		return err
	}
	return nil
}

func (c *NodeCommand) Description() string {
	return c.spec.description
}

func (c *NodeCommand) Help() string {
	return c.spec.help
}
