// FILE: alin/src/internal/node/runner.go
package node

import (
	"context"
	"fmt"

	"alin/src/internal/sink"
	"alin/src/internal/source"

	"github.com/lixenwraith/log"
)

// Runner drives one invocation: read the whole input, transform it, and
// write at most one record.
type Runner struct {
	source *source.StdinSource
	sink   *sink.ConsoleSink
	logger *log.Logger
}

// NewRunner wires a source and sink together.
func NewRunner(src *source.StdinSource, snk *sink.ConsoleSink, logger *log.Logger) *Runner {
	return &Runner{
		source: src,
		sink:   snk,
		logger: logger,
	}
}

// Run executes t once. Empty input is a silent no-op. Any returned error
// guarantees that nothing was written.
func (r *Runner) Run(ctx context.Context, t Transform) error {
	rec, err := r.source.ReadRecord()
	if err != nil {
		return err
	}
	if rec == "" {
		r.logger.Debug("msg", "Empty input, nothing to do",
			"component", "runner",
			"node", t.Name())
		return nil
	}

	res, err := t.Process(ctx, rec)
	if err != nil {
		return fmt.Errorf("%s: %w", t.Name(), err)
	}

	r.logger.Debug("msg", "Record processed",
		"component", "runner",
		"node", t.Name(),
		"action", res.Action.String())

	switch res.Action {
	case Emit:
		return r.sink.WriteRecord(res.Record)
	case Pass:
		return r.sink.WriteRecord(rec)
	case Drop:
		return nil
	default:
		return fmt.Errorf("%s: unknown action %d", t.Name(), res.Action)
	}
}
